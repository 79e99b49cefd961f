package chart

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

// PageEntry is one corpus section of the HTML report.
type PageEntry struct {
	Title   string
	Summary string
	Charts  []Chart
}

const pageStyle = "body{font-family:sans-serif;margin:2rem}section{margin-bottom:3rem}pre{background:#f6f6f6;padding:1rem}"

// ReportPage renders every entry with its summary text and charts.
func ReportPage(title string, entries []PageEntry) templ.Component {
	return templruntime.GeneratedTemplate(func(input templruntime.GeneratedComponentInput) (err error) {
		w, ctx := input.Writer, input.Context
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		buf, isBuffer := templruntime.GetBuffer(w)
		if !isBuffer {
			defer func() {
				if bufErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = bufErr
				}
			}()
		}
		ctx = templ.InitializeContext(ctx)

		err = writeNode(buf, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>", templ.EscapeString(title), "</title>")
		if err != nil {
			return err
		}
		err = writeNode(buf, "<style>", pageStyle, "</style></head><body>\n")
		if err != nil {
			return err
		}
		err = writeNode(buf, "<h1>", templ.EscapeString(title), "</h1>\n")
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			_, err = buf.WriteString("<p class=\"empty\">No corpora were processed.</p>\n")
			if err != nil {
				return err
			}
		}
		for _, entry := range entries {
			if err = entrySection(entry).Render(ctx, buf); err != nil {
				return err
			}
		}
		_, err = buf.WriteString("</body></html>\n")
		return err
	})
}

func entrySection(entry PageEntry) templ.Component {
	return templruntime.GeneratedTemplate(func(input templruntime.GeneratedComponentInput) (err error) {
		w, ctx := input.Writer, input.Context
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		buf, isBuffer := templruntime.GetBuffer(w)
		if !isBuffer {
			defer func() {
				if bufErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = bufErr
				}
			}()
		}
		ctx = templ.InitializeContext(ctx)

		err = writeNode(buf, "<section>\n<h2>", templ.EscapeString(entry.Title), "</h2>\n")
		if err != nil {
			return err
		}
		err = writeNode(buf, "<pre class=\"summary\">", templ.EscapeString(entry.Summary), "</pre>\n")
		if err != nil {
			return err
		}
		for _, c := range entry.Charts {
			if err = SVG(c).Render(ctx, buf); err != nil {
				return err
			}
			if _, err = buf.WriteString("\n"); err != nil {
				return err
			}
		}
		_, err = buf.WriteString("</section>\n")
		return err
	})
}

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, title string, entries []PageEntry) (string, error) {
	var builder strings.Builder
	if err := ReportPage(title, entries).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
