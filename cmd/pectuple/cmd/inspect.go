package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pec"
	"github.com/arloliu/pec/record"
	"github.com/arloliu/pec/tuple"
)

func newInspectCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the header, columns and first rows of a tuple",
		Long: `Print the header, columns and first rows of a tuple.

Example:
  pectuple inspect leptons.pec --rows 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("read tuple", zap.String("file", args[0]), zap.Int("bytes", len(data)))

			return inspect(cmd.OutOrStdout(), data, rows)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "number of rows to print")

	return cmd
}

func inspect(w io.Writer, data []byte, rows int) error {
	r, rec, err := pec.Open(data)
	if err != nil {
		return err
	}

	byteOrder := "little-endian"
	if r.IsBigEndian() {
		byteOrder = "big-endian"
	}

	fmt.Fprintf(w, "kind:        %s\n", r.Kind())
	fmt.Fprintf(w, "rows:        %d\n", r.Len())
	fmt.Fprintf(w, "compression: %s\n", strings.ToLower(r.Compression().String()))
	fmt.Fprintf(w, "byte order:  %s\n", byteOrder)
	fmt.Fprintf(w, "created at:  %s\n", r.CreatedAt().UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "size:        %d bytes\n\n", len(data))

	renderColumns(w, r, rec)

	if rows <= 0 {
		return nil
	}

	fmt.Fprintln(w)

	return renderRows(w, r, rec, rows)
}

func renderColumns(w io.Writer, r *tuple.Reader, rec record.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Column", "ID", "Width", "Stored"})

	schema := rec.Columns()
	for i, col := range r.Columns() {
		name := col.Name
		if name == "" && i < len(schema) {
			name = schema[i].Name
		}
		table.Append([]string{
			strconv.Itoa(i),
			name,
			fmt.Sprintf("%016x", col.ID),
			strconv.Itoa(col.Width),
			strconv.Itoa(col.StoredSize),
		})
	}

	table.Render()
}

func renderRows(w io.Writer, r *tuple.Reader, rec record.Record, limit int) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"Row"}, rowHeader(rec)...))

	for row, err := range r.Rows(rec) {
		if err != nil {
			return err
		}
		if row >= limit {
			break
		}
		table.Append(append([]string{strconv.Itoa(row)}, rowValues(rec)...))
	}

	table.Render()

	return nil
}

func rowHeader(rec record.Record) []string {
	switch rec.(type) {
	case *record.GeneratorInfo:
		return []string{"processID", "weight", "x1", "x2", "id1", "id2", "Q"}
	case *record.Lepton:
		return []string{"pt", "eta", "phi", "mass", "ids", "charge", "relIso", "dB"}
	case *record.PileUpInfo:
		return []string{"numPV", "rho", "trueNumPU", "inTimeNumPU"}
	default:
		return nil
	}
}

func rowValues(rec record.Record) []string {
	switch v := rec.(type) {
	case *record.GeneratorInfo:
		x1, _ := v.PdfX(0)
		x2, _ := v.PdfX(1)
		id1, _ := v.PdfID(0)
		id2, _ := v.PdfID(1)

		return []string{
			strconv.Itoa(v.ProcessID()), formatFloat(v.Weight()), formatFloat(x1), formatFloat(x2),
			strconv.Itoa(id1), strconv.Itoa(id2), formatFloat(v.PdfQScale()),
		}
	case *record.Lepton:
		return []string{
			formatFloat(v.Pt()), formatFloat(v.Eta()), formatFloat(v.Phi()), formatFloat(v.Mass()),
			leptonIDs(v), strconv.Itoa(v.Charge()), formatFloat(v.RelIso()), formatFloat(v.DB()),
		}
	case *record.PileUpInfo:
		return []string{
			strconv.Itoa(v.NumPV()), formatFloat(v.Rho()), formatFloat(v.TrueNumPU()), strconv.Itoa(v.InTimeNumPU()),
		}
	default:
		return nil
	}
}

func leptonIDs(l *record.Lepton) string {
	var bits uint16
	for i := range record.NumIDBits {
		if set, _ := l.TestBit(i); set {
			bits |= 1 << i
		}
	}

	return fmt.Sprintf("%016b", bits)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
