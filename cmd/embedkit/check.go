package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aleister1102/embedkit/internal/common/errorwrapper"
	"github.com/aleister1102/embedkit/internal/discord"
	"github.com/aleister1102/embedkit/internal/document"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <document>",
		Short: "Report embed lengths and limit violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(a, cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(a *app, w io.Writer, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	reports := doc.EmbedReports()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Length", "Status"})
	for _, r := range reports {
		status := "ok"
		if r.Exceeds() {
			status = "exceeds limits"
		}
		table.Append([]string{strconv.Itoa(r.Index), r.Title, fmt.Sprintf("%d/%d", r.Length, discord.MaxEmbedTotalLength), status})
	}
	table.Render()

	err = doc.Validate()
	if err == nil {
		fmt.Fprintln(w, "document is valid")
		return nil
	}

	var verr *errorwrapper.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	red := color.New(color.FgRed).SprintFunc()
	for _, v := range verr.Violations {
		fmt.Fprintf(w, "%s %s\n", red("✗"), v)
	}
	lg := a.log()
	lg.Debug().Str("document", path).Int("violations", len(verr.Violations)).Msg("Document check failed")
	return fmt.Errorf("%d problem(s) found in %s", len(verr.Violations), path)
}
