package domain

// CommonOptions are per-run options shared across the pipeline
type CommonOptions struct {
	Verbose  bool
	Quiet    bool
	DryRun   bool
	FailFast bool
}
