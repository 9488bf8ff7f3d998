package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/plss"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	var n, skipped int
	switch c.Kind {
	case "wells":
		n, err = importRecords(deps.Ctx, data, func(ctx context.Context, w *plss.Well) error {
			if err := w.Validate(); err != nil {
				return err
			}
			return deps.Wells.CreateWell(ctx, w)
		})
	case "properties":
		n, err = importRecords(deps.Ctx, data, func(ctx context.Context, p *plss.Property) error {
			if err := p.Validate(); err != nil {
				return err
			}
			return deps.Properties.CreateProperty(ctx, p)
		})
	case "documents":
		n, err = importRecords(deps.Ctx, data, func(ctx context.Context, d *plss.Document) error {
			if err := d.Validate(); err != nil {
				return err
			}
			if !c.AllowDuplicates {
				existing, err := deps.Documents.FindDocuments(ctx, plss.DocumentFilter{Fields: d.Fields, Limit: 1})
				if err != nil {
					return err
				}
				if len(existing) > 0 {
					skipped++
					return nil
				}
			}
			return deps.Documents.CreateDocument(ctx, d)
		})
	default:
		err = plss.Errorf(plss.EINVALID, "unknown record kind %q", c.Kind)
	}
	n -= skipped
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		if n > 0 {
			fmt.Fprintf(deps.Stderr, "%d %s imported before the failure\n", n, c.Kind)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d %s\n", n, c.Kind)
	if skipped > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d already stored\n", skipped)
	}
	return nil
}

// importRecords decodes a JSON array and creates each record in order,
// stopping at the first failure. It returns the number created.
func importRecords[T any](ctx context.Context, data []byte, create func(context.Context, *T) error) (int, error) {
	var records []*T
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, plss.Errorf(plss.EINVALID, "invalid JSON array: %s", err)
	}
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := create(ctx, r); err != nil {
			return i, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return len(records), nil
}
