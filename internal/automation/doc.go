// Package automation runs the photoelectric model without a UI: scripted
// lesson scenarios loaded from YAML and one-parameter sweeps used for I-V
// and threshold curves.
package automation
