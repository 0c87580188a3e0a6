package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/pec/minifloat"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the minifloat format of every persisted field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderFormats(cmd.OutOrStdout(), minifloat.Fields())
			return nil
		},
	}
}

func renderFormats(w io.Writer, fields []minifloat.Field) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Bits", "Signed", "Mantissa", "Exponent", "Bias", "Underflow", "Min Normal", "Max", "Rel. Error"})

	for _, f := range fields {
		table.Append([]string{
			f.Name,
			strconv.FormatUint(uint64(f.Format.Width()), 10),
			strconv.FormatBool(f.Format.Signed),
			strconv.FormatUint(uint64(f.Format.MantissaBits), 10),
			strconv.FormatUint(uint64(f.Format.ExponentBits), 10),
			strconv.Itoa(f.Format.Bias),
			f.Format.Underflow.String(),
			fmt.Sprintf("%g", f.Format.MinNormal()),
			fmt.Sprintf("%g", f.Format.Max()),
			fmt.Sprintf("%.2g", math.Ldexp(1, -int(f.Format.MantissaBits)-1)),
		})
	}

	table.Render()
}
