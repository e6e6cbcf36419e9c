package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/material"
)

func runMaterialsList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("materials-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	typ := fs.String("type", "", "Material type: job or exam (empty for all)")
	category := fs.String("category", "", "Category to filter by (empty for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := material.Query{Type: material.Type(*typ), Category: material.ParseCategory(*category)}
	if q.Type != "" && !q.Type.Valid() {
		return fmt.Errorf("unknown material type %q", *typ)
	}

	var (
		items []material.StudyMaterial
		err   error
	)
	if q.Type == "" && q.Category == "" {
		items, err = cmdCtx.API.Materials().AdminList(cmdCtx.Ctx, cmdCtx.Session)
	} else {
		items, err = cmdCtx.API.Materials().List(cmdCtx.Ctx, cmdCtx.Session, q)
	}
	if err != nil {
		return fmt.Errorf("list materials: %w", err)
	}
	if len(items) == 0 {
		pterm.Info.Println("No study materials found.")
		return nil
	}
	return renderTable(cmdCtx.Out, materialRows(items))
}

func materialRows(items []material.StudyMaterial) [][]string {
	rows := [][]string{{"ID", "Title", "Type", "Category", "FAQs"}}
	for _, m := range items {
		rows = append(rows, []string{
			m.ID,
			m.Title,
			m.Type.Label(),
			m.Category.Label(),
			fmt.Sprint(len(m.FAQs)),
		})
	}
	return rows
}

// loadDrafts decodes a JSON array of drafts. Unknown fields are rejected so
// typos in an import file surface before anything is created.
func loadDrafts(r io.Reader) ([]material.Draft, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var drafts []material.Draft
	if err := dec.Decode(&drafts); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	if len(drafts) == 0 {
		return nil, errors.New("import file holds no drafts")
	}
	return drafts, nil
}

type materialCreator interface {
	Create(ctx context.Context, sess domainauth.Session, env material.Envelope) (material.StudyMaterial, error)
}

type importFailure struct {
	Index int
	Title string
	Err   error
}

type importSummary struct {
	Created  []string
	Failures []importFailure
}

// importMaterials validates and creates each draft in order, continuing past
// failures. A nil creator validates only.
func importMaterials(
	ctx context.Context,
	creator materialCreator,
	sess domainauth.Session,
	drafts []material.Draft,
	bar *pb.ProgressBar,
) importSummary {
	var sum importSummary
	for i, d := range drafts {
		if bar != nil {
			bar.Increment()
		}
		if err := d.Validate().Err(); err != nil {
			sum.Failures = append(sum.Failures, importFailure{Index: i, Title: d.Title, Err: err})
			continue
		}
		if creator == nil {
			continue
		}
		env, err := material.NewEnvelope(d, nil)
		if err == nil {
			var created material.StudyMaterial
			created, err = creator.Create(ctx, sess, env)
			if err == nil {
				sum.Created = append(sum.Created, created.ID)
				continue
			}
		}
		sum.Failures = append(sum.Failures, importFailure{Index: i, Title: d.Title, Err: err})
		if ctx.Err() != nil {
			break
		}
	}
	return sum
}

func runMaterialsImport(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("materials-import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "Path to a JSON array of material drafts")
	dryRun := fs.Bool("dry-run", false, "Validate drafts without creating anything")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	drafts, err := loadDrafts(f)
	if err != nil {
		return err
	}

	var creator materialCreator
	if !*dryRun {
		creator = cmdCtx.API.Materials()
	}
	bar := pb.New(len(drafts)).SetWriter(os.Stderr)
	bar.Start()
	sum := importMaterials(cmdCtx.Ctx, creator, cmdCtx.Session, drafts, bar)
	bar.Finish()

	return reportImport(cmdCtx.Out, sum, len(drafts), *dryRun)
}

func reportImport(w io.Writer, sum importSummary, total int, dryRun bool) error {
	if len(sum.Failures) > 0 {
		rows := [][]string{{"#", "Title", "Error"}}
		for _, f := range sum.Failures {
			rows = append(rows, []string{fmt.Sprint(f.Index + 1), f.Title, f.Err.Error()})
		}
		if err := renderTable(w, rows); err != nil {
			return err
		}
	}
	ok := total - len(sum.Failures)
	switch {
	case dryRun && len(sum.Failures) == 0:
		pterm.Success.Printfln("All %d drafts are valid.", total)
	case dryRun:
		pterm.Warning.Printfln("%d of %d drafts are valid.", ok, total)
	case len(sum.Failures) == 0:
		pterm.Success.Printfln("Created %d study materials.", len(sum.Created))
	default:
		pterm.Warning.Printfln("Created %d of %d study materials.", len(sum.Created), total)
	}
	if len(sum.Failures) > 0 {
		return fmt.Errorf("%d drafts failed", len(sum.Failures))
	}
	return nil
}
