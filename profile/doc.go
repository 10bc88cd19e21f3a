// Package profile provides pprof profiling setup for CLI applications.
//
// Submission parsing is CPU-bound; this package makes it cheap to profile a
// parse run from the command line. Create a [Config], register its flags,
// then bracket the measured work:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	p := cfg.NewProfiler()
//	if err := p.Start(); err != nil {
//	    return err
//	}
//	defer p.Stop()
package profile
