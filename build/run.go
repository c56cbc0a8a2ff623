// Package build implements main program action: load walkthrough, compile it
// and write results.
package build

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"guidec/config"
	"guidec/output"
	"guidec/source"
	"guidec/state"
	"guidec/walkthrough"
)

// Values is a struct that holds variables we make available for summary
// template expansion.
type Values struct {
	TOC     int
	Entries int
	Items   int
	Source  string
	Output  string
}

// Run compiles configured source. Optional arguments override source and
// output paths from configuration.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	doc := env.Cfg.Document
	if src := cmd.Args().Get(0); len(src) > 0 {
		doc.SourcePath = filepath.Clean(src)
	}
	if dst := cmd.Args().Get(1); len(dst) > 0 {
		doc.OutputPath = filepath.Clean(dst)
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Processing starting", zap.String("source", doc.SourcePath), zap.String("destination", doc.OutputPath))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	values, err := process(ctx, &doc, env.Rpt, log)
	if err != nil {
		return err
	}

	summary, err := expandSummary(doc.SummaryTemplate, values)
	if err != nil {
		return err
	}
	if len(summary) > 0 {
		fmt.Fprintln(cmd.Root().Writer, summary)
	}
	return nil
}

// process does all the work independently of CLI framework.
func process(ctx context.Context, conf *config.DocumentConfig, rpt *config.Report, log *zap.Logger) (*Values, error) {
	src, err := source.Load(ctx, conf.SourcePath, log.Named("source"))
	if err != nil {
		return nil, fmt.Errorf("unable to load walkthrough: %w", err)
	}
	if err := rpt.StoreCopy("source/"+filepath.Base(src.Path), src.Path); err != nil {
		log.Debug("Unable to store source in the report", zap.Error(err))
	}

	res, err := walkthrough.Compile(ctx, src.Text, walkthrough.Options{
		Meta:    conf.Meta.GuideMeta(),
		Workers: conf.Workers,
	}, log.Named("walkthrough"))
	if err != nil {
		return nil, fmt.Errorf("unable to compile %s: %w", src.Name, err)
	}
	res.Coverage.Report(log)

	data, err := output.MarshalDocument(res.Document)
	if err != nil {
		return nil, err
	}
	if err := output.WriteFile(conf.OutputPath, data); err != nil {
		return nil, err
	}
	rpt.StoreData("result/"+filepath.Base(conf.OutputPath), data)
	rpt.StoreData("debug/document.txt", []byte(res.Document.String()))

	if len(conf.IndexPath) > 0 {
		if err := output.WriteIndex(res.Document, conf.IndexPath); err != nil {
			return nil, err
		}
		rpt.Store("result/"+filepath.Base(conf.IndexPath), conf.IndexPath)
		log.Debug("Item index written", zap.String("index", conf.IndexPath))
	}

	log.Debug("Document written",
		zap.String("output", conf.OutputPath),
		zap.Int("toc", len(res.Document.TOC)),
		zap.Int("entries", len(res.Document.Entries)),
		zap.Int("items", len(res.Document.Items)))

	return &Values{
		TOC:     len(res.Document.TOC),
		Entries: len(res.Document.Entries),
		Items:   len(res.Document.Items),
		Source:  src.Name,
		Output:  conf.OutputPath,
	}, nil
}

func expandSummary(field string, values *Values) (string, error) {
	if len(field) == 0 {
		return "", nil
	}

	tmpl, err := template.New(string(config.SummaryTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", config.SummaryTemplateFieldName, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", config.SummaryTemplateFieldName, err)
	}
	return buf.String(), nil
}
