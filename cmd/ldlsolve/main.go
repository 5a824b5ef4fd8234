// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ldlsolve factors a dense symmetric system with the blocked
// sign-aware Cholesky decomposition and solves it, reporting per-stage timing
// and the accuracy of the computed solution.
//
// Usage:
//
//	ldlsolve N B T [matrix_file]
//
// N is the matrix order, B the block size and T the number of workers. With a
// matrix file, the file holds the full symmetric matrix as whitespace-separated
// values in row-major order (both triangles); only the upper triangle is kept.
// Without one, the synthetic test matrix A[i,j] = |N − max(i,j)| is generated.
// The right-hand side is b = A·x̂ for the reference solution x̂ with ones at
// even indices, and the report at the end shows ‖x − x̂‖₂, ‖b − A·x‖₂ and the
// relative residual.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sashuIya/ldlsolve/internal/matgen"
	"github.com/sashuIya/ldlsolve/internal/stopwatch"
	"github.com/sashuIya/ldlsolve/ldl"
	"github.com/sashuIya/ldlsolve/packed"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ldlsolve N B T [matrix_file]")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) != 3 && len(args) != 4 {
		usage()
	}

	n := parseSize(args[0], "N")
	bs := parseSize(args[1], "B")
	workers := parseSize(args[2], "T")
	if bs > n || workers > ldl.MaxWorkers {
		fatalf("invalid configuration: need B <= N and T <= %d", ldl.MaxWorkers)
	}

	sw := stopwatch.New()

	// One allocation carries the packed matrix, the five length-n vectors and
	// the factorization scratch; the solver itself never allocates.
	pl := packed.Len(n)
	buf := make([]float64, pl+5*n+(4*workers+2)*bs*bs)
	ap := buf[:pl]
	d := buf[pl : pl+n]
	xhat := buf[pl+n : pl+2*n]
	x := buf[pl+2*n : pl+3*n]
	bExact := buf[pl+3*n : pl+4*n]
	rhs := buf[pl+4*n : pl+5*n]
	work := buf[pl+5*n:]

	matgen.FillSolution(xhat)
	if err := fillSystem(n, ap, xhat, rhs, args); err != nil {
		fatalf("%v", err)
	}
	copy(bExact, rhs)
	copy(x, rhs)

	printStage(sw, "initialization")

	if n < 15 {
		fmt.Printf("A =\n%v\n\n", mat.Formatted(matgen.Dense(n, ap)))
		fmt.Printf("b = %.10v\n\n", rhs)
	}

	if err := ldl.Factorize(n, ap, d, work, bs, workers); err != nil {
		fatalf("factorization: %v", err)
	}
	printStage(sw, "factorization")

	if err := ldl.SolveForward(n, ap, x, work, bs); err != nil {
		fatalf("forward solve: %v", err)
	}
	if err := ldl.SolveBackward(n, ap, d, x, work, bs); err != nil {
		fatalf("backward solve: %v", err)
	}
	printStage(sw, "solve")

	if n < 15 {
		fmt.Printf("R =\n%v\n\n", mat.Formatted(matgen.Upper(n, ap)))
		fmt.Printf("d = %.1v\n\n", d)
	}

	// The factorization destroyed ap, so rebuild the pristine matrix and form
	// A·x to measure how well the computed solution reproduces the system.
	if err := fillSystem(n, ap, x, rhs, args); err != nil {
		fatalf("%v", err)
	}

	errNorm := floats.Distance(xhat, x, 2)
	residual := floats.Distance(bExact, rhs, 2)
	bNorm := floats.Norm(bExact, 2)
	fmt.Printf("error: %11.5e  residual: %11.5e (relative %11.5e)\n", errNorm, residual, residual/bNorm)

	cpu, wall := sw.Total()
	fmt.Printf("total: cpu %v, wall %v\n", round(cpu), round(wall))
}

// fillSystem populates ap with the input matrix and rhs with A·x, either from
// the synthetic generator or from the matrix file named on the command line.
func fillSystem(n int, ap, x, rhs []float64, args []string) error {
	if len(args) != 4 {
		matgen.Fill(n, ap, x, rhs)
		return nil
	}
	f, err := os.Open(args[3])
	if err != nil {
		return err
	}
	defer f.Close()
	return matgen.Read(n, ap, x, rhs, f)
}

func parseSize(s, name string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		fatalf("%s must be a positive integer, got %q", name, s)
	}
	return v
}

func printStage(sw *stopwatch.Stopwatch, name string) {
	cpu, wall := sw.Stage()
	fmt.Printf("%s: cpu %v, wall %v\n", name, round(cpu), round(wall))
}

func round(d time.Duration) time.Duration {
	return d.Round(10 * time.Microsecond)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ldlsolve: "+format+"\n", args...)
	os.Exit(1)
}
