package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/pennyante/tablerules/rules"
)

// CheckCmd validates a rule document against the structural invariants the
// resolver enforces at table construction time.
type CheckCmd struct {
	Path    string `arg:"" help:"Path to the HCL rule document"`
	Variant string `default:"american" help:"Table variant to resolve for"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *CheckCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	variant, err := rules.ParseVariant(c.Variant)
	if err != nil {
		return err
	}

	r, err := rules.Load(variant, rules.WithDocumentFile(c.Path))
	if err != nil {
		logger.Error("rule document is invalid", "path", c.Path, "error", err)
		return err
	}

	logger.Info("rule document is valid",
		"path", c.Path,
		"variant", r.Variant(),
		"allowedTypes", len(r.AllowedTypes()),
		"minimumBet", r.TableMinimum(),
		"maximumBet", r.TableMaximum())
	return nil
}
