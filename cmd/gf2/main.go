// SPDX-License-Identifier: MIT

// Command gf2 exposes the dense GF(2) linear-algebra kernels on the command
// line: rank, determinant, inversion, transposition, addition, multiplication
// and linear solving over bit matrices.
//
// Matrix files are plain text: one row per line, entries 0/1, separated by
// spaces (or packed together, "1101"). Blank lines and #-comments are
// skipped. The file name "-" reads from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gf2/matrix"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gf2: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gf2",
		Short: "Dense linear algebra over GF(2)",
		Long: "gf2 reads 0/1 matrices from text files (or stdin via \"-\") and runs\n" +
			"bit-packed GF(2) kernels on them: rank, determinant, inverse,\n" +
			"transpose, addition, multiplication and linear solving.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("logger: %w", err)
				}
				logger = l
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRankCmd(),
		newDetCmd(),
		newInverseCmd(),
		newTransposeCmd(),
		newAddCmd(),
		newMulCmd(),
		newSolveCmd(),
	)

	return root
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <matrix>",
		Short: "Print the rank of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			rank, err := m.Rank()
			if err != nil {
				return err
			}
			logger.Debug("rank computed",
				zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()), zap.Int("rank", rank))
			fmt.Fprintln(cmd.OutOrStdout(), rank)

			return nil
		},
	}
}

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det <matrix>",
		Short: "Print the determinant (0 or 1) of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			det, err := m.Det()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), det)

			return nil
		},
	}
}

func newInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <matrix>",
		Short: "Print the inverse of a square full-rank matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			inv, err := m.Inverse()
			if err != nil {
				return err
			}

			return printMatrix(cmd.OutOrStdout(), inv)
		},
	}
}

func newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <matrix>",
		Short: "Print the transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			tr, err := m.T()
			if err != nil {
				return err
			}

			return printMatrix(cmd.OutOrStdout(), tr)
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <matrixA> <matrixB>",
		Short: "Print the element-wise sum (XOR) of two matrices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			sum, err := a.Add(b)
			if err != nil {
				return err
			}

			return printMatrix(cmd.OutOrStdout(), sum)
		},
	}
}

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <matrixA> <matrixB>",
		Short: "Print the matrix product of two matrices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			prod, err := a.Mul(b)
			if err != nil {
				return err
			}

			return printMatrix(cmd.OutOrStdout(), prod)
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <matrix> <vector>",
		Short: "Solve A·x = b and print one solution",
		Long: "solve reads the coefficient matrix A from the first file and the\n" +
			"right-hand side b (a flat list of 0/1 values, any whitespace layout)\n" +
			"from the second, then prints one particular solution x. Free\n" +
			"variables are fixed to 0; an inconsistent system is an error.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := loadVector(args[1])
			if err != nil {
				return err
			}

			x, info, err := m.SolveFull(b)
			if err != nil {
				return err
			}
			logger.Debug("system solved",
				zap.Int("rank", info.Rank), zap.Ints("free_cols", info.FreeCols))

			out := cmd.OutOrStdout()
			for i, v := range x {
				if i > 0 {
					fmt.Fprint(out, " ")
				}
				fmt.Fprint(out, v)
			}
			fmt.Fprintln(out)

			return nil
		},
	}
}

// openInput resolves "-" to stdin and everything else to a file.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return f, nil
}

// parseBits turns one text line into its 0/1 values. Tokens may be single
// digits ("1 0 1") or packed runs ("101"); anything else is rejected.
func parseBits(line string) ([]matrix.Bit, error) {
	var bits []matrix.Bit
	for _, tok := range strings.Fields(line) {
		for _, r := range tok {
			switch r {
			case '0':
				bits = append(bits, matrix.Zero)
			case '1':
				bits = append(bits, matrix.One)
			default:
				return nil, fmt.Errorf("invalid character %q (want 0 or 1)", r)
			}
		}
	}

	return bits, nil
}

// loadMatrix reads a whole 0/1 matrix from path ("-" = stdin).
func loadMatrix(path string) (*matrix.Mat, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var rows [][]matrix.Bit
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bits, err := parseBits(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		rows = append(rows, bits)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	m, err := matrix.MatFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("matrix loaded",
		zap.String("path", path), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// loadPair reads two matrices; only one of them may come from stdin.
func loadPair(pathA, pathB string) (*matrix.Mat, *matrix.Mat, error) {
	if pathA == "-" && pathB == "-" {
		return nil, nil, fmt.Errorf("only one operand may read from stdin")
	}
	a, err := loadMatrix(pathA)
	if err != nil {
		return nil, nil, err
	}
	b, err := loadMatrix(pathB)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// loadVector reads a flat 0/1 vector, ignoring line structure.
func loadVector(path string) ([]matrix.Bit, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	bits, err := parseBits(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bits, nil
}

// printMatrix writes the matrix in the same text format loadMatrix accepts,
// so command outputs pipe back into further gf2 invocations.
func printMatrix(w io.Writer, m *matrix.Mat) error {
	rows, err := m.ToRows()
	if err != nil {
		return err
	}
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprintln(w)
	}

	return nil
}
