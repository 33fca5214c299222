package config

import "flag"

// BindFlags registers c's fields on fs, in the style of cmd/maestro's
// stdlib-flag wiring — the corpus never reaches for a flag-parsing library
// here, so that choice is kept. Flags take precedence over whatever Load
// populated as long as fs is parsed after the file-loaded values are in c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.BoundedModelChecking, "bmc", c.BoundedModelChecking, "enable bounded model checking")
	fs.BoolVar(&c.KInduction, "kinduction", c.KInduction, "enable k-induction")
	fs.BoolVar(&c.InvariantGeneration, "invgen", c.InvariantGeneration, "enable invariant generation")
	fs.BoolVar(&c.SmoothCounterexamples, "smooth", c.SmoothCounterexamples, "smooth counterexamples before reporting")
	fs.IntVar(&c.PDRMax, "pdr-max", c.PDRMax, "enable PDR with the given max frame count (0 disables PDR)")

	fs.StringVar(&c.ReadAdvice, "read-advice", c.ReadAdvice, "path to an advice store to read hints from")
	fs.StringVar(&c.WriteAdvice, "write-advice", c.WriteAdvice, "path to an advice store to persist hints to")

	fs.BoolVar(&c.ReduceIVC, "reduce-ivc", c.ReduceIVC, "compute a minimal inductive validity core for each valid property")
	fs.BoolVar(&c.AllIVCs, "all-ivcs", c.AllIVCs, "additionally compute all inductive validity cores (requires reduce-ivc)")
	fs.BoolVar(&c.AllAssigned, "all-assigned", c.AllAssigned, "include right-hand dependencies when projecting an IVC")

	fs.IntVar(&c.TimeoutSeconds, "timeout", c.TimeoutSeconds, "overall analysis timeout in seconds (0 sweeps immediately, -1 disables)")

	fs.BoolVar(&c.Excel, "excel", c.Excel, "write a spreadsheet report")
	fs.BoolVar(&c.XML, "xml", c.XML, "write an XML report")
	fs.BoolVar(&c.XMLToStdout, "xml-to-stdout", c.XMLToStdout, "stream the XML report to stdout instead of a file")
	fs.BoolVar(&c.MiniJKind, "embedded", c.MiniJKind, "run in embedded mode (in-memory writer, explicit engine stop)")
	fs.StringVar(&c.Filename, "filename", c.Filename, "base filename for file-based writers")
}
