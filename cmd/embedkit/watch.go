package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/embedkit/internal/document"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

func newWatchCmd(a *app) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "watch <document>",
		Short: "Re-render a message document every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, a, cmd.OutOrStdout(), args[0], delay)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", document.DefaultReloadDelay, "wait this long after the last change before re-rendering")
	return cmd
}

func runWatch(ctx context.Context, a *app, w io.Writer, path string, delay time.Duration) error {
	watcher, err := document.NewWatcher(path, delay, a.log())
	if err != nil {
		return err
	}
	defer watcher.Close()

	doc, err := document.Load(path)
	if err != nil {
		fmt.Fprintf(w, "load failed: %v\n", err)
	} else {
		printPreview(a, w, doc)
	}

	err = watcher.Run(ctx, func(doc *document.Document, err error) {
		if err != nil {
			fmt.Fprintf(w, "reload failed: %v\n", err)
			return
		}
		printPreview(a, w, doc)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printPreview renders the document and prints the JSON payload. Attachments
// are listed by name since the multipart body is not printable.
func printPreview(a *app, w io.Writer, doc *document.Document) {
	request, err := requestFor(a, doc, a.cfg.Render.StrictLimits)
	if err != nil {
		fmt.Fprintf(w, "render failed: %v\n", err)
		return
	}

	fmt.Fprintf(w, "--- %s ---\n", time.Now().Format(time.TimeOnly))
	if !request.IsMultipart() {
		w.Write(pretty.Pretty([]byte(request.Body)))
		return
	}
	for _, part := range request.Form.Fields() {
		if part.Name == "payload_json" {
			w.Write(pretty.Pretty(part.Data))
			continue
		}
		fmt.Fprintf(w, "attachment %s: %s (%s)\n", part.Name, part.Filename, part.ContentType)
	}
}
