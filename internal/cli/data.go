package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
	"github.com/heartmarshall/wortschatz-backend/internal/wordimport"
)

func newImportWordsCommand(rt *state) *cobra.Command {
	var (
		user, collectionID, sheet, comma string
		noHeader                         bool
	)
	cmd := &cobra.Command{
		Use:   "import-words FILE",
		Short: "Add words from a CSV or XLSX file to a collection",
		Long: `Reads columns "term, translation, example, example translation" from FILE
and adds every new word to the collection. Duplicates and invalid rows are
reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := userContext(cmd.Context(), user)
			if err != nil {
				return err
			}
			cid, err := parseCollectionID(collectionID)
			if err != nil {
				return err
			}

			cfg := wordimport.DefaultConfig()
			cfg.Sheet = sheet
			cfg.SkipHeader = !noHeader
			if comma != "" {
				r := []rune(comma)
				if len(r) != 1 {
					return fmt.Errorf("--comma must be a single character, got %q", comma)
				}
				cfg.Comma = r[0]
			}

			rows, err := wordimport.ReadFile(args[0], cfg)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no rows found")
				return nil
			}

			storage, err := rt.openStorage(ctx)
			if err != nil {
				return err
			}
			defer storage.Close()

			res, err := storage.Collections.ImportWords(ctx, collection.ImportWordsInput{CollectionID: cid, Rows: rows})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "added %d, duplicates %d, invalid %d\n", res.Added, res.Duplicates, len(res.Invalid))
			for _, fe := range res.Invalid {
				fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "owner user id (UUID)")
	cmd.Flags().StringVar(&collectionID, "collection", "", "target collection id (UUID)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name; defaults to the first sheet")
	cmd.Flags().StringVar(&comma, "comma", "", "CSV delimiter; defaults to ','")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "the file has no header row")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("collection")
	return cmd
}

func newExportCommand(rt *state) *cobra.Command {
	var user, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's collections and words as a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := userContext(cmd.Context(), user)
			if err != nil {
				return err
			}

			storage, err := rt.openStorage(ctx)
			if err != nil {
				return err
			}
			defer storage.Close()

			data, err := storage.Collections.ExportData(ctx)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return os.WriteFile(output, data, 0o600)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "owner user id (UUID)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; stdout when empty")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newImportCommand(rt *state) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace a user's data with a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := userContext(cmd.Context(), user)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			storage, err := rt.openStorage(ctx)
			if err != nil {
				return err
			}
			defer storage.Close()

			res, err := storage.Collections.ImportData(ctx, data)
			if err != nil {
				for _, fe := range domain.FieldErrors(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fe.Field, fe.Message)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d collection(s), %d word(s), skipped %d\n", res.Collections, res.Words, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "owner user id (UUID)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
