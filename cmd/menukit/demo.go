package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/muesli/termenv"

	"menukit/internal/menu"
	"menukit/pkg/menutypes"
)

// registerDemoOptions populates the registry with the demo menu: a few
// greetings, an adder, and ASCII shape drawing with defaulted sizes.
func registerDemoOptions(reg *menu.Registry, out io.Writer) error {
	term := termenv.NewOutput(out)

	specs := []struct {
		handler menutypes.Handler
		opts    []menu.RegisterOption
	}{
		{
			handler: func(_ []any) error {
				fmt.Fprintln(out, "Hello!")
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("hello", "hi"),
				menu.WithHelp("Say hello"),
			},
		},
		{
			handler: func(args []any) error {
				if len(args) < 2 {
					return fmt.Errorf("add needs two numbers; run with argument prompting enabled")
				}
				a, b := args[0].(int), args[1].(int)
				fmt.Fprintf(out, "Result: %d\n", a+b)
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("add", "plus"),
				menu.WithHelp("Add two numbers"),
				menu.WithParams(
					menutypes.Param{Name: "a", Kind: menutypes.ParamInt},
					menutypes.Param{Name: "b", Kind: menutypes.ParamInt},
				),
			},
		},
		{
			handler: func(args []any) error {
				drawTriangle(out, intArg(args, 0, 5))
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("triangle"),
				menu.WithHelp("Draw a triangle"),
				menu.WithParams(sizeParam("size", 5)),
			},
		},
		{
			handler: func(args []any) error {
				drawSquare(out, intArg(args, 0, 5))
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("square"),
				menu.WithHelp("Draw a square"),
				menu.WithParams(sizeParam("size", 5)),
			},
		},
		{
			handler: func(args []any) error {
				drawCircle(out, intArg(args, 0, 5))
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("circle"),
				menu.WithHelp("Draw a circle"),
				menu.WithParams(sizeParam("radius", 5)),
			},
		},
		{
			handler: func(_ []any) error {
				term.ClearScreen()
				return nil
			},
			opts: []menu.RegisterOption{
				menu.WithNames("cls"),
				menu.WithHelp("Clear the screen"),
			},
		},
	}

	for _, s := range specs {
		if _, err := reg.Register(s.handler, s.opts...); err != nil {
			return err
		}
	}
	return nil
}

func sizeParam(name string, fallback int) menutypes.Param {
	return menutypes.Param{
		Name:       name,
		Kind:       menutypes.ParamInt,
		HasDefault: true,
		Default:    fallback,
	}
}

// intArg reads a positional int argument, falling back when argument
// prompting was disabled and the slice is short.
func intArg(args []any, i int, fallback int) int {
	if i < len(args) {
		if n, ok := args[i].(int); ok {
			return n
		}
	}
	return fallback
}

func drawTriangle(out io.Writer, size int) {
	for i := 1; i <= size; i++ {
		fmt.Fprintln(out, strings.TrimRight(strings.Repeat("* ", i), " "))
	}
}

func drawSquare(out io.Writer, size int) {
	if size < 1 {
		return
	}
	for i := 0; i < size; i++ {
		if i == 0 || i == size-1 {
			fmt.Fprintln(out, strings.TrimRight(strings.Repeat(" * ", size), " "))
		} else {
			fmt.Fprintf(out, " * %s * \n", strings.Repeat("   ", max(size-2, 0)))
		}
	}
}

func drawCircle(out io.Writer, radius int) {
	for i := -radius; i <= radius; i++ {
		var line strings.Builder
		for j := -radius; j <= radius; j++ {
			dist := math.Sqrt(float64(i*i + j*j))
			if float64(radius)-0.5 <= dist && dist <= float64(radius)+0.5 {
				line.WriteString("* ")
			} else {
				line.WriteString("  ")
			}
		}
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}
}
