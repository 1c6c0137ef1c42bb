package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kolah/flatapi/internal/extract"
)

func writeText(w io.Writer, doc *Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s %s (OpenAPI %s)\n", doc.Title, doc.Version, doc.OpenAPI)
	for _, ep := range doc.Entrypoints {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "%s %s\t%s\n", ep.Method, ep.Route, ep.OperationID)
		fmt.Fprintf(tw, "  func %s\n", ep.Signature)
		if ep.Deprecated {
			fmt.Fprintln(tw, "  deprecated")
		}
		for _, a := range ep.Args {
			fmt.Fprintf(tw, "  arg\t%s\t%s\t%s\n", a.Name, a.In, a.Type)
		}
		if b := ep.Body; b != nil {
			fmt.Fprintf(tw, "  body\t%s\t%s\t%s\n", required(b.Required), dash(b.ContentType), dash(b.Type))
		}
		for _, r := range ep.Responses {
			fmt.Fprintf(tw, "  response\t%s\t%s\t%s\n", r.Status, dash(r.ContentType), dash(r.Type))
			for _, h := range r.Headers {
				fmt.Fprintf(tw, "  header\t%s\t%s\t%s\n", r.Status, h.Name, h.Type)
			}
		}
	}

	nerr, nwarn := 0, 0
	for _, d := range doc.Diagnostics {
		if d.Severity == string(extract.SeverityError) {
			nerr++
		} else {
			nwarn++
		}
	}
	fmt.Fprintf(tw, "\n%d entrypoints, %d errors, %d warnings\n", len(doc.Entrypoints), nerr, nwarn)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func required(ok bool) string {
	if ok {
		return "required"
	}
	return "optional"
}
