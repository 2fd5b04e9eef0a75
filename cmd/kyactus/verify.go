package main

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dcrodman/kyactus/internal/battle"
	"github.com/dcrodman/kyactus/internal/scene"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <scene file>",
		Short: "Checks that every battle structure survives a decode/encode round trip",
		Args:  cobra.ExactArgs(1),
		RunE:  VerifyCommand,
	}
}

func VerifyCommand(cmd *cobra.Command, args []string) error {
	format, err := config.SceneFormat()
	if err != nil {
		return err
	}
	data, err := scene.ReadRaw(args[0], format)
	if err != nil {
		return err
	}

	structures, err := battle.DecodeMany(data, format.Records)
	if err != nil {
		return err
	}
	encoded, err := battle.EncodeMany(structures, format.Records)
	if err != nil {
		return err
	}

	mismatches := compareRecords(data, encoded)
	for _, m := range mismatches {
		logger.WithFields(logrus.Fields{
			"encounter": m.index,
			"offset":    m.offset,
			"want":      fmt.Sprintf("%#02x", m.want),
			"got":       fmt.Sprintf("%#02x", m.got),
		}).Warn("round trip mismatch")
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d record(s) did not survive the round trip", len(mismatches))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d battle structures OK\n", args[0], len(structures))
	return nil
}

type mismatch struct {
	index  int
	offset int
	want   byte
	got    byte
}

// compareRecords returns the first differing byte of every record that
// differs between a and b, which must have the same length.
func compareRecords(a, b []byte) []mismatch {
	var mismatches []mismatch
	for start := 0; start+battle.RecordSize <= len(a) && start+battle.RecordSize <= len(b); start += battle.RecordSize {
		want, got := a[start:start+battle.RecordSize], b[start:start+battle.RecordSize]
		if bytes.Equal(want, got) {
			continue
		}
		for i := range want {
			if want[i] != got[i] {
				mismatches = append(mismatches, mismatch{
					index:  start / battle.RecordSize,
					offset: i,
					want:   want[i],
					got:    got[i],
				})
				break
			}
		}
	}
	return mismatches
}
