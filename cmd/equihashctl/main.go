package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/logger"
	"github.com/kuking/go-equihash/config"
	"github.com/kuking/go-equihash/equihash"
)

func main() {
	logger.Init("equihashctl", false, false, os.Stdout)
	doCmdSolve()
	doCmdVerify()
	doCmdPresets()
	showGeneralHelp()
}

func doCmdSolve() {
	args := os.Args
	if len(args) > 1 && args[1] == "solve" {
		if len(args) < 5 {
			showSolveHelp()
		}
		n, err := strconv.ParseUint(args[2], 10, 32)
		panicOnErr(err)
		k, err := strconv.ParseUint(args[3], 10, 32)
		panicOnErr(err)
		header := args[4]
		optimised := len(args) > 5 && args[5] == "--optimised"

		e, err := equihash.New(uint32(n), uint32(k))
		panicOnErr(err)
		state := e.NewHashState()
		_, err = state.Write([]byte(header))
		panicOnErr(err)

		var sols []equihash.Solution
		if optimised {
			sols, err = e.SolveOptimised(context.Background(), state)
		} else {
			sols, err = e.Solve(context.Background(), state)
		}
		panicOnErr(err)

		fmt.Printf("found %d solution(s) for %v with header %q\n", len(sols), e.Params, header)
		for _, sol := range sols {
			fmt.Println(formatIndices(sol))
		}
		os.Exit(0)
	}
}

func doCmdVerify() {
	args := os.Args
	if len(args) > 1 && args[1] == "verify" {
		if len(args) != 6 {
			showVerifyHelp()
		}
		n, err := strconv.ParseUint(args[2], 10, 32)
		panicOnErr(err)
		k, err := strconv.ParseUint(args[3], 10, 32)
		panicOnErr(err)
		header := args[4]
		sol, err := parseIndices(args[5])
		panicOnErr(err)

		e, err := equihash.New(uint32(n), uint32(k))
		panicOnErr(err)
		state := e.NewHashState()
		_, err = state.Write([]byte(header))
		panicOnErr(err)

		ok, err := e.IsValidSolution(state, sol)
		panicOnErr(err)
		if ok {
			fmt.Println("valid")
			os.Exit(0)
		}
		fmt.Println("invalid")
		os.Exit(1)
	}
}

func doCmdPresets() {
	args := os.Args
	if len(args) > 1 && args[1] == "presets" {
		if len(args) > 2 && args[2] == "list" {
			registry := config.NewEmpty()
			for _, p := range registry.Presets {
				fmt.Println(p.String())
			}
			os.Exit(0)
		}
		if len(args) == 4 && args[2] == "show" {
			registry := config.NewEmpty()
			preset, err := registry.Get(args[3])
			panicOnErr(err)
			params, err := preset.Params()
			panicOnErr(err)
			fmt.Printf("%s: n=%d k=%d N=%d Nb=%d W=%d L=%d S=%d\n",
				preset.Name, params.HashBits, params.TreeDepth,
				params.CollisionBitLength(), params.CollisionByteLength(),
				params.HashByteLength(), params.InitialListLength(), params.SolutionSize())
			os.Exit(0)
		}
		showPresetsHelp()
	}
}

func formatIndices(sol equihash.Solution) string {
	parts := make([]string, len(sol))
	for i, idx := range sol {
		parts[i] = strconv.FormatUint(uint64(idx), 10)
	}
	return strings.Join(parts, ",")
}

func parseIndices(s string) (equihash.Solution, error) {
	fields := strings.Split(s, ",")
	sol := make(equihash.Solution, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, err
		}
		sol[i] = uint32(v)
	}
	return sol, nil
}

func panicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

func showGeneralHelp() {
	fmt.Println(`Equihash proof-of-work tool

Usage:

         equihashctl <command> [arguments]

The commands are:

         solve     runs the solver against n, k and a header string
         verify    checks a comma-separated index list against n, k and a header string
         presets   lists or inspects named (n,k) parameter presets

Use "equihashctl <command>" with no further arguments for usage of that command.`)
	os.Exit(0)
}

func showSolveHelp() {
	fmt.Println("Usage: equihashctl solve <n> <k> <header> [--optimised]")
	os.Exit(0)
}

func showVerifyHelp() {
	fmt.Println("Usage: equihashctl verify <n> <k> <header> <comma-separated-indices>")
	os.Exit(0)
}

func showPresetsHelp() {
	fmt.Println(`Usage: equihashctl presets <sub command>

The Sub commands are:
         list        lists all named presets
         show <name> shows the derived constants for a preset`)
	os.Exit(0)
}
