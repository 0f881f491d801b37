package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/QinLinag/omniponent_bst/config"
	"github.com/QinLinag/omniponent_bst/sortTree"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildTree inserts the command line values, or the configured ones when none
// were given.
func (a *app) buildTree(args []string) (*sortTree.Tree[int], error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		values = a.conf.Values
	}

	tree := sortTree.NewSortTree[int]()
	for _, v := range values {
		if a.conf.RecursiveInsert {
			tree.InsertRecursively(v)
		} else {
			tree.Insert(v)
		}
	}
	a.log.WithField("count", tree.GetCount()).
		WithField("recursive", a.conf.RecursiveInsert).
		Debugf("built tree from %d values", len(values))
	return tree, nil
}

func traverse(tree *sortTree.Tree[int], order string) ([]int, error) {
	switch order {
	case config.OrderPre:
		return tree.DfsPreOrder(), nil
	case config.OrderIn:
		return tree.DfsInOrder(), nil
	case config.OrderPost:
		return tree.DfsPostOrder(), nil
	case config.OrderBFS:
		return tree.Bfs(), nil
	case config.OrderStack:
		return tree.GetValues(), nil
	default:
		return nil, errors.Newf("unknown order %q, expected one of %v", order, config.Orders)
	}
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type inspectReport struct {
	Count         int   `json:"count"`
	Height        int   `json:"height"`
	Balanced      bool  `json:"balanced"`
	PreOrder      []int `json:"pre_order"`
	InOrder       []int `json:"in_order"`
	PostOrder     []int `json:"post_order"`
	BFS           []int `json:"bfs"`
	Min           *int  `json:"min"`
	Max           *int  `json:"max"`
	SecondHighest *int  `json:"second_highest"`
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func formatOptional(v *int) string {
	if v == nil {
		return "none"
	}
	return strconv.Itoa(*v)
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [values...]",
		Short: "build a tree and print every traversal and statistic",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildTree(args)
			if err != nil {
				return err
			}
			report := inspectReport{
				Count:         tree.GetCount(),
				Height:        tree.Height(),
				Balanced:      tree.IsBalanced(),
				PreOrder:      tree.DfsPreOrder(),
				InOrder:       tree.DfsInOrder(),
				PostOrder:     tree.DfsPostOrder(),
				BFS:           tree.Bfs(),
				Min:           optional(tree.Min()),
				Max:           optional(tree.Max()),
				SecondHighest: optional(tree.FindSecondHighest()),
			}
			out := cmd.OutOrStdout()
			if a.conf.JSON {
				return a.writeJSON(out, report)
			}

			tbl := tablewriter.NewWriter(out)
			tbl.SetHeader([]string{"Query", "Result"})
			tbl.SetAutoWrapText(false)
			tbl.AppendBulk([][]string{
				{"count", strconv.Itoa(report.Count)},
				{"height", strconv.Itoa(report.Height)},
				{"balanced", strconv.FormatBool(report.Balanced)},
				{"pre-order", formatValues(report.PreOrder)},
				{"in-order", formatValues(report.InOrder)},
				{"post-order", formatValues(report.PostOrder)},
				{"bfs", formatValues(report.BFS)},
				{"min", formatOptional(report.Min)},
				{"max", formatOptional(report.Max)},
				{"second-highest", formatOptional(report.SecondHighest)},
			})
			tbl.Render()
			return nil
		},
	}
}

func (a *app) traverseCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "traverse [values...]",
		Short: "print the values of a tree in the given order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") {
				order = a.conf.Order
			}
			tree, err := a.buildTree(args)
			if err != nil {
				return err
			}
			values, err := traverse(tree, order)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.conf.JSON {
				return a.writeJSON(out, map[string]any{"order": order, "values": values})
			}
			_, err = fmt.Fprintln(out, formatValues(values))
			return err
		},
	}
	cmd.Flags().StringVarP(
		&order, "order", "o", config.OrderIn,
		fmt.Sprintf("traversal order, one of %v", config.Orders))
	return cmd
}

func (a *app) findCmd() *cobra.Command {
	var value int
	var recursive bool
	cmd := &cobra.Command{
		Use:   "find --value N [values...]",
		Short: "look a value up in a tree",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildTree(args)
			if err != nil {
				return err
			}
			node := tree.Find(value)
			if recursive {
				node = tree.FindRecursively(value)
			}
			found := node != nil
			a.log.WithField("value", value).WithField("recursive", recursive).Debugf("found: %t", found)

			out := cmd.OutOrStdout()
			if a.conf.JSON {
				return a.writeJSON(out, map[string]any{"value": value, "found": found})
			}
			if found {
				_, err = fmt.Fprintf(out, "%d found\n", value)
			} else {
				_, err = fmt.Fprintf(out, "%d not found\n", value)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&value, "value", "v", 0, "value to look up")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "use the recursive search")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "remove --value N [values...]",
		Short: "remove a value and print the remaining values in order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.buildTree(args)
			if err != nil {
				return err
			}
			removed := tree.Delete(value)
			root := "none"
			if r := tree.Root(); r != nil {
				root = strconv.Itoa(r.Value)
			}
			a.log.WithField("value", value).WithField("root", root).Debugf("removed: %t", removed)

			out := cmd.OutOrStdout()
			if a.conf.JSON {
				return a.writeJSON(out, map[string]any{
					"value":    value,
					"removed":  removed,
					"in_order": tree.DfsInOrder(),
				})
			}
			if !removed {
				_, err = fmt.Fprintf(out, "%d not found %s\n", value, formatValues(tree.DfsInOrder()))
				return err
			}
			_, err = fmt.Fprintf(out, "removed %d %s\n", value, formatValues(tree.DfsInOrder()))
			return err
		},
	}
	cmd.Flags().IntVarP(&value, "value", "v", 0, "value to remove")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
