package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aleister1102/embedkit/internal/document"
	"github.com/aleister1102/embedkit/internal/parser"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

type renderOptions struct {
	out    string
	strict bool
	pretty bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Print the request headers and body for a message document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = a.cfg.Render.StrictLimits
			}
			if !cmd.Flags().Changed("pretty") {
				opts.pretty = a.cfg.Render.Pretty
			}
			return runRender(a, cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the multipart body to this file (required when the document has files)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when an embed exceeds Discord limits")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON body")
	return cmd
}

// buildRequest loads a document and turns it into a request descriptor
func buildRequest(a *app, path string, strict bool) (*parser.RequestData, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return requestFor(a, doc, strict)
}

func requestFor(a *app, doc *document.Document, strict bool) (*parser.RequestData, error) {
	buildOpts := document.OptionsFromConfig(a.cfg.Render)
	buildOpts.StrictLimits = strict
	builder, err := document.NewBuilder(a.log(), buildOpts).Build(doc)
	if err != nil {
		return nil, err
	}

	return parser.New(a.log(), parser.WithStrictLimits(strict)).Parse(builder)
}

func runRender(a *app, w io.Writer, path string, opts *renderOptions) error {
	request, err := buildRequest(a, path, opts.strict)
	if err != nil {
		return err
	}

	if request.IsMultipart() && opts.out == "" {
		return fmt.Errorf("document has attachments, use --out to write the multipart body")
	}

	writeHeaders(w, request.Headers)

	if !request.IsMultipart() {
		body := []byte(request.Body)
		if opts.pretty {
			body = pretty.Pretty(body)
		} else {
			body = append(body, '\n')
		}
		_, err := w.Write(body)
		return err
	}

	data, err := request.Form.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, data, 0644); err != nil {
		return fmt.Errorf("failed to write multipart body: %w", err)
	}
	fmt.Fprintf(w, "wrote %s multipart body to %s\n", humanize.IBytes(uint64(len(data))), opts.out)
	lg := a.log()
	lg.Info().Str("request_id", request.ID).Str("out", opts.out).Int("bytes", len(data)).Msg("Multipart body written")
	return nil
}

func writeHeaders(w io.Writer, headers map[string]string) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, headers[k])
	}
	fmt.Fprintln(w)
}
