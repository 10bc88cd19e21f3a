package xmltest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onaio/onadata/xmltest"
)

func TestDoc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc", xmltest.Doc("a", "b", "c"))
	assert.Equal(t, "only", xmltest.Doc("only"))
	assert.Equal(t, "", xmltest.Doc())
}

func TestElem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<name>Larry</name>", xmltest.Elem("name", "Larry"))
	assert.Equal(t, "<meta></meta>", xmltest.Elem("meta", ""))
}
