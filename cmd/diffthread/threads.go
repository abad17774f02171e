package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfields/diffthread/internal/model"
	"github.com/mfields/diffthread/internal/render"
)

func threadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "List the thread catalog",
		Long:  `Print the thread table the pair generator draws from, ordered by diameter.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			threads, err := loadCatalog()
			if err != nil {
				return err
			}

			standard, err := cmd.Flags().GetString("standard")
			if err != nil {
				return err
			}
			if standard != "" {
				keep := model.Standard(strings.ToUpper(standard))
				if keep != model.StandardUTS && keep != model.StandardISO {
					return fmt.Errorf("invalid standard %q (expected uts or iso)", standard)
				}
				threads = slices.DeleteFunc(threads, func(t model.Thread) bool {
					return t.Standard != keep
				})
			}

			slices.SortFunc(threads, func(a, b model.Thread) int {
				if a.Less(b) {
					return -1
				}
				if b.Less(a) {
					return 1
				}
				return 0
			})

			return render.Threads(os.Stdout, threads)
		},
	}

	cmd.Flags().String("standard", "", "restrict to one thread standard (uts, iso)")

	return cmd
}
