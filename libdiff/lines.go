package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int8

const (
	Delete Op = -1
	Equal  Op = 0
	Insert Op = 1
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

// Line is one line of a line diff.
type Line struct {
	Op   Op
	Text string
}

// Lines computes the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, l := range strings.SplitAfter(diff.Text, "\n") {
			if l == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return res
}

// Changed reports whether a diff holds anything but equal lines.
func Changed(ls []Line) bool {
	for _, l := range ls {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Stats counts the deleted and inserted lines.
func Stats(ls []Line) (deleted, inserted int) {
	for _, l := range ls {
		switch l.Op {
		case Delete:
			deleted++
		case Insert:
			inserted++
		}
	}
	return
}

// Write prints ls prefixed by -, + or a space, in color when colored is
// set. With context >= 0 runs of equal lines farther than context lines
// from a change are elided.
func Write(w io.Writer, ls []Line, context int, colored bool) error {
	paint := map[Op]func(...any) string{
		Delete: fmt.Sprint,
		Insert: fmt.Sprint,
		Equal:  fmt.Sprint,
	}
	if colored {
		paint[Delete] = color.New(color.FgRed).SprintFunc()
		paint[Insert] = color.New(color.FgGreen).SprintFunc()
	}
	sep := fmt.Sprint
	if colored {
		sep = color.New(color.FgCyan).SprintFunc()
	}
	keep := visible(ls, context)
	elided := false
	for i, l := range ls {
		if !keep[i] {
			if !elided {
				if _, err := fmt.Fprintln(w, sep("...")); err != nil {
					return err
				}
			}
			elided = true
			continue
		}
		elided = false
		if _, err := fmt.Fprintln(w, paint[l.Op](l.Op.Prefix()+l.Text)); err != nil {
			return err
		}
	}
	return nil
}

func visible(ls []Line, context int) []bool {
	res := make([]bool, len(ls))
	if context < 0 {
		for i := range res {
			res[i] = true
		}
		return res
	}
	for i, l := range ls {
		if l.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(ls)-1, i+context); j++ {
			res[j] = true
		}
	}
	return res
}
