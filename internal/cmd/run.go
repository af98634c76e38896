package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/compare"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/export"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/loader"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/output"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/reorder"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/scanner"
)

// runStatus tracks the worst outcome across modes and files. failed wins
// over findings when mapping to an exit code.
type runStatus struct {
	findings bool
	failed   bool
}

func (s *runStatus) merge(o runStatus) {
	s.findings = s.findings || o.findings
	s.failed = s.failed || o.failed
}

func (s runStatus) err() error {
	switch {
	case s.failed:
		return errRunFailed
	case s.findings:
		return errFindings
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !checkDuplicates && !checkMissing && !sortKeys {
		return cmd.Help()
	}

	r := output.New(viper.GetString("output"))

	dir, err := scanner.Resolve(viper.GetString("directory"))
	if err != nil {
		return err
	}

	if flagFile != "" {
		return runFile(dir, r)
	}

	var status runStatus
	if checkDuplicates {
		st, err := runDuplicates(dir, r)
		if err != nil {
			return err
		}
		status.merge(st)
	}
	if checkMissing {
		st, err := runMissing(dir, r)
		if err != nil {
			return err
		}
		status.merge(st)
	}
	if sortKeys {
		st, err := runSort(dir, r)
		if err != nil {
			return err
		}
		status.merge(st)
	}
	return status.err()
}

// runDuplicates checks every locale file in dir for duplicate keys.
func runDuplicates(dir string, r output.Renderer) (runStatus, error) {
	paths, err := scanner.ListLocales(dir)
	if err != nil {
		return runStatus{}, err
	}

	st, sum := scanDuplicates(paths, r)
	_ = r.Summary(sum)
	return st, nil
}

func scanDuplicates(paths []string, r output.Renderer) (runStatus, model.Summary) {
	var st runStatus
	var sum model.Summary

	for _, path := range paths {
		sum.FilesChecked++

		f, err := loader.Load(path)
		if err != nil {
			st.failed = true
			sum.Errors++
			renderError(r, path, err)
			continue
		}

		dups := compare.Duplicates(f)
		if len(dups) == 0 {
			_ = r.Render(model.Result{Path: path, Status: model.StatusOK})
			continue
		}

		st.findings = true
		sum.Findings++
		_ = r.Render(model.Result{Path: path, Status: model.StatusDuplicates, Duplicates: dups})
	}
	return st, sum
}

// runMissing checks every non-base locale file in dir against the base
// file's key set, exporting the missing keys when -e is given.
func runMissing(dir string, r output.Renderer) (runStatus, error) {
	base, err := loadBase(dir)
	if err != nil {
		return runStatus{}, err
	}

	paths, err := scanner.ListLocales(dir)
	if err != nil {
		return runStatus{}, err
	}

	st, sum, report := scanMissing(paths, base, r)
	_ = r.Summary(sum)

	if exportDir != "" {
		if err := export.Export(base, report, exportDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			st.failed = true
		}
	}
	return st, nil
}

func scanMissing(paths []string, base *model.LocaleFile, r output.Renderer) (runStatus, model.Summary, []model.MissingKeys) {
	var st runStatus
	var sum model.Summary
	var report []model.MissingKeys

	for _, path := range paths {
		if samePath(path, base.Path) {
			continue
		}
		sum.FilesChecked++

		f, err := loader.Load(path)
		if err != nil {
			st.failed = true
			sum.Errors++
			renderError(r, path, err)
			continue
		}

		missing := compare.Missing(base, f)
		if len(missing) == 0 {
			_ = r.Render(model.Result{Path: path, Status: model.StatusOK})
			continue
		}

		st.findings = true
		sum.Findings++
		_ = r.Render(model.Result{Path: path, Status: model.StatusMissing, Missing: missing})
		report = append(report, model.MissingKeys{Path: path, Locale: f.Locale, Keys: missing})
	}
	return st, sum, report
}

// runSort rewrites every non-base locale file with its keys in base
// order. Sorting reports no findings; a clean run exits 0.
func runSort(dir string, r output.Renderer) (runStatus, error) {
	base, err := loadBase(dir)
	if err != nil {
		return runStatus{}, err
	}

	paths, err := scanner.ListLocales(dir)
	if err != nil {
		return runStatus{}, err
	}

	var st runStatus
	for _, path := range paths {
		if samePath(path, base.Path) {
			continue
		}

		f, err := loader.Load(path)
		if err != nil {
			st.failed = true
			renderError(r, path, err)
			continue
		}

		if err := reorder.WriteFile(reorder.Reorder(base, f)); err != nil {
			st.failed = true
			renderError(r, path, err)
			continue
		}
		_ = r.Render(model.Result{Path: path, Status: model.StatusSorted})
	}
	return st, nil
}

// runFile handles -f: the selected modes applied to a single file. The
// base file still resolves against the locales directory.
func runFile(dir string, r output.Renderer) error {
	var status runStatus

	if checkDuplicates {
		st, _ := scanDuplicates([]string{flagFile}, r)
		status.merge(st)
	}

	if checkMissing {
		base, err := loadBase(dir)
		if err != nil {
			return err
		}

		st, _, report := scanMissing([]string{flagFile}, base, r)
		status.merge(st)

		if exportDir != "" {
			if err := export.Export(base, report, exportDir); err != nil {
				fmt.Fprintln(os.Stderr, err)
				status.failed = true
			}
		}
	}

	if sortKeys {
		base, err := loadBase(dir)
		if err != nil {
			return err
		}

		f, err := loader.Load(flagFile)
		if err != nil {
			return err
		}
		if err := reorder.WriteFile(reorder.Reorder(base, f)); err != nil {
			return err
		}
		_ = r.Render(model.Result{Path: flagFile, Status: model.StatusSorted})
	}

	return status.err()
}

// loadBase resolves and parses the base file. Failures here are fatal:
// without a baseline there is nothing to compare against.
func loadBase(dir string) (*model.LocaleFile, error) {
	basePath, err := scanner.BasePath(dir, viper.GetString("base"))
	if err != nil {
		return nil, err
	}
	return loader.Load(basePath)
}

func renderError(r output.Renderer, path string, err error) {
	_ = r.Render(model.Result{Path: path, Status: model.StatusError, Error: err.Error()})
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
