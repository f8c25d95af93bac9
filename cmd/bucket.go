package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketCmd groups the bucket subcommands
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create [bucket]",
	Short: "Create a bucket if it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, logg, err := requireTemplate()
		if err != nil {
			return err
		}
		if err := tpl.CreateBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Bucket ensured", zap.String("bucket", args[0]))
		return nil
	},
}

var bucketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _, err := requireTemplate()
		if err != nil {
			return err
		}
		buckets, err := tpl.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCREATED")
		for _, b := range buckets {
			fmt.Fprintf(w, "%s\t%s\n", b.Name, humanize.Time(b.CreatedTime))
		}
		return w.Flush()
	},
}

var bucketGetCmd = &cobra.Command{
	Use:   "get [bucket]",
	Short: "Show a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _, err := requireTemplate()
		if err != nil {
			return err
		}
		b, err := tpl.GetBucket(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Name:     %s\nCreated:  %s\n", b.Name, b.CreatedTime.Format("2006-01-02 15:04:05 MST"))
		return nil
	},
}

var bucketRemoveCmd = &cobra.Command{
	Use:     "remove [bucket]",
	Aliases: []string{"rm"},
	Short:   "Remove an empty bucket",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, logg, err := requireTemplate()
		if err != nil {
			return err
		}
		if err := tpl.RemoveBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Bucket removed", zap.String("bucket", args[0]))
		return nil
	},
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd, bucketListCmd, bucketGetCmd, bucketRemoveCmd)
	RootCmd.AddCommand(bucketCmd)
}
