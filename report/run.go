// Package report composes the explanatory note and drives its generation.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pzg/document"
	"pzg/docx"
	"pzg/state"
	"pzg/style"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	set := style.SetFromConfig(&env.Cfg.Document.Style)
	meta := document.MetadataFromConfig(&env.Cfg.Document.Metadata)

	comp := document.NewComposer(set, meta)
	comp.ConfigureGeometry(document.GeometryFromConfig(&env.Cfg.Document.Page))
	if err := Compose(comp, meta); err != nil {
		return fmt.Errorf("unable to compose document: %w", err)
	}
	d := comp.Document()

	outputPath := buildOutputPath(d, dst, env)
	if err := docx.Generate(ctx, d, outputPath, &env.Cfg.Document, log); err != nil {
		return fmt.Errorf("unable to generate document: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store("result/"+filepath.Base(outputPath), outputPath)
	}
	return nil
}
