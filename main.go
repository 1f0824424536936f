package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/crillab/kmap/kmap"
	"github.com/crillab/kmap/logic"
	"github.com/crillab/kmap/qm"
)

func main() {
	var (
		verbose   bool
		nbVars    int
		orient    string
		strategy  string
		minterms  string
		dontcares string
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.IntVar(&nbVars, "n", 4, "number of variables, between 2 and 4")
	flag.StringVar(&orient, "orient", kmap.ColsAB.String(), "variables laid along the columns (ab-cols|ab-rows)")
	flag.StringVar(&strategy, "strategy", kmap.StrategyExpression.String(), "how groups are computed (expr|greedy|exact)")
	flag.StringVar(&minterms, "m", "", "comma-separated list of minterms")
	flag.StringVar(&dontcares, "d", "", "comma-separated list of don't cares, used with -m")
	flag.Parse()
	if (minterms == "") == (len(flag.Args()) != 1) {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] (-m minterms [-d dontcares] | expression | file.bf)\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	var opts kmap.Options
	var err error
	if opts.Orientation, err = kmap.ParseOrientation(orient); err != nil {
		fail(err)
	}
	if opts.Strategy, err = kmap.ParseStrategy(strategy); err != nil {
		fail(err)
	}
	var res *kmap.Result
	if minterms != "" {
		res, err = fromLists(nbVars, minterms, dontcares, opts)
	} else {
		res, err = fromExpression(nbVars, flag.Args()[0], opts)
	}
	if err != nil {
		fail(err)
	}
	if verbose {
		describe(res, opts)
	}
	output(res)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func fromLists(n int, minterms, dontcares string, opts kmap.Options) (*kmap.Result, error) {
	ones, err := parseList(minterms)
	if err != nil {
		return nil, fmt.Errorf("could not parse minterms: %v", err)
	}
	dcs, err := parseList(dontcares)
	if err != nil {
		return nil, fmt.Errorf("could not parse don't cares: %v", err)
	}
	return kmap.FromMinterms(n, ones, dcs, opts)
}

func fromExpression(n int, arg string, opts kmap.Options) (*kmap.Result, error) {
	vars, err := logic.Variables(n)
	if err != nil {
		return nil, err
	}
	expr := arg
	if strings.HasSuffix(arg, ".bf") {
		content, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %v", arg, err)
		}
		expr = string(content)
	}
	f, err := logic.ParseFor(expr, vars)
	if err != nil {
		return nil, fmt.Errorf("could not parse formula: %w", err)
	}
	return kmap.FromFormula(n, f, opts)
}

func parseList(list string) ([]int, error) {
	var res []int
	for _, field := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' }) {
		val, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", field)
		}
		res = append(res, val)
	}
	return res, nil
}

func describe(res *kmap.Result, opts kmap.Options) {
	n := len(res.Vars)
	fmt.Printf("c %d variables, %dx%d map, %v, strategy %v\n", n, res.Grid.Rows, res.Grid.Cols, opts.Orientation, opts.Strategy)
	fmt.Printf("c minterms: %v\n", res.Minterms)
	fmt.Printf("c don't cares: %v\n", res.DontCares)
	primes := qm.Primes(n, res.Minterms, res.DontCares)
	fmt.Printf("c %d prime implicants\n", len(primes))
	for _, p := range primes {
		fmt.Printf("c   %s %v\n", p.Pattern(n), p.Term(res.Vars))
	}
	nbLits := 0
	for _, t := range res.SOP {
		nbLits += len(t)
	}
	fmt.Printf("c SOP: %d terms, %d literals\n", len(res.SOP), nbLits)
}

func output(res *kmap.Result) {
	fmt.Printf("SOP: %s\n", res.SOPText())
	fmt.Printf("POS: %s\n", res.POSText())
	fmt.Println()
	ones := res.Ones()
	dcs := res.DontCareCells()
	rowLabels := res.Grid.RowLabels(res.Vars)
	colLabels := res.Grid.ColLabels(res.Vars)
	width := len(rowLabels[0])
	fmt.Printf("%*s", width, "")
	for _, label := range colLabels {
		fmt.Printf(" %s", label)
	}
	fmt.Println()
	for r, label := range rowLabels {
		fmt.Printf("%s", label)
		for c, colLabel := range colLabels {
			cell := kmap.Coord{Row: r, Col: c}
			val := "0"
			switch {
			case ones.Has(cell):
				val = "1"
			case dcs.Has(cell):
				val = "X"
			}
			fmt.Printf(" %*s", len(colLabel), val)
		}
		fmt.Println()
	}
	fmt.Println()
	for i, g := range res.Groups {
		fmt.Printf("group %d: %s %v %v\n", i+1, g.Label, g.Rect, g.Cells)
	}
}
