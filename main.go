package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/matilds/gosoup/parser"
	"github.com/matilds/gosoup/parser/dom"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Error("gosoup failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gosoup"
	app.Usage = "parse markup from a file or stdin, apply one tree operation and print the result"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "debug", Usage: "log parser decisions"},
		cli.BoolFlag{Name: "trace", Usage: "log a tree diff for every mutation"},
		cli.BoolFlag{Name: "tree", Usage: "print the indented tree instead of markup"},
	}
	app.Before = func(c *cli.Context) error {
		switch {
		case c.GlobalBool("trace"):
			logrus.SetLevel(logrus.TraceLevel)
		case c.GlobalBool("debug"):
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	targetFlag := cli.StringFlag{Name: "target,t", Usage: "tag name of the first element to operate on", Value: "p"}
	app.Commands = []cli.Command{
		{
			Name:   "render",
			Usage:  "parse and print",
			Action: withDocument(func(c *cli.Context, doc *dom.Document) error { return nil }),
		},
		{
			Name:  "wrap",
			Usage: "wrap the target (or its sole string) in a new element",
			Flags: []cli.Flag{
				targetFlag,
				cli.StringFlag{Name: "with,w", Usage: "tag name of the wrapper", Value: "div"},
				cli.BoolFlag{Name: "string,s", Usage: "wrap the target's sole string instead of the target"},
			},
			Action: withDocument(wrapAction),
		},
		{
			Name:   "unwrap",
			Usage:  "replace the target with its children",
			Flags:  []cli.Flag{targetFlag},
			Action: withDocument(unwrapAction),
		},
		{
			Name:   "string",
			Usage:  "print the sole string of the target, or None",
			Flags:  []cli.Flag{targetFlag},
			Action: stringAction,
		},
		{
			Name:  "replace",
			Usage: "replace the target with a new element holding some text",
			Flags: []cli.Flag{
				targetFlag,
				cli.StringFlag{Name: "with,w", Usage: "tag name of the replacement", Value: "b"},
				cli.StringFlag{Name: "text", Usage: "text of the replacement"},
			},
			Action: withDocument(replaceAction),
		},
	}
	return app
}

// readDocument parses the file named by the first argument, or stdin.
func readDocument(c *cli.Context) (*dom.Document, error) {
	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}
	return parser.Parse(in)
}

// withDocument parses the input, runs op on it and prints the whole document.
func withDocument(op func(*cli.Context, *dom.Document) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		doc, err := readDocument(c)
		if err != nil {
			return err
		}
		if err := op(c, doc); err != nil {
			return err
		}
		out := c.App.Writer
		if c.GlobalBool("tree") {
			fmt.Fprintln(out, doc.Dump())
			return nil
		}
		if err := dom.Render(out, doc.Node); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return nil
	}
}

func findTarget(c *cli.Context, doc *dom.Document) (*dom.Node, error) {
	name := c.String("target")
	n := doc.Find(name)
	if n == nil {
		return nil, errors.Errorf("no <%s> element in input", name)
	}
	return n, nil
}

func wrapAction(c *cli.Context, doc *dom.Document) error {
	target, err := findTarget(c, doc)
	if err != nil {
		return err
	}
	if c.Bool("string") {
		if target = target.SoleStringNode(); target == nil {
			return errors.Errorf("<%s> has no sole string", c.String("target"))
		}
	}
	_, err = target.Wrap(doc.CreateElement(c.String("with")))
	return err
}

func unwrapAction(c *cli.Context, doc *dom.Document) error {
	target, err := findTarget(c, doc)
	if err != nil {
		return err
	}
	_, err = target.Unwrap()
	return err
}

func replaceAction(c *cli.Context, doc *dom.Document) error {
	target, err := findTarget(c, doc)
	if err != nil {
		return err
	}
	replacement := doc.CreateElement(c.String("with"))
	if err := replacement.SetString(c.String("text")); err != nil {
		return err
	}
	_, err = target.ReplaceWith(replacement)
	return err
}

func stringAction(c *cli.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}
	target, err := findTarget(c, doc)
	if err != nil {
		return err
	}
	if s, ok := target.SoleString(); ok {
		fmt.Fprintln(c.App.Writer, s)
	} else {
		fmt.Fprintln(c.App.Writer, "None")
	}
	return nil
}
