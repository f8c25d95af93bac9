package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"storage-template/core/template"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// objectCmd groups the object subcommands
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects",
}

var objectListCmd = &cobra.Command{
	Use:   "list [bucket]",
	Short: "List objects by prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _, err := requireTemplate()
		if err != nil {
			return err
		}
		prefix, _ := cmd.Flags().GetString("prefix")
		recursive, _ := cmd.Flags().GetBool("recursive")

		objects, err := template.Collect(tpl.ListObjects(cmd.Context(), args[0], prefix, recursive))
		if err != nil {
			return fmt.Errorf("failed to list objects in %s: %w", args[0], err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
		for _, obj := range objects {
			fmt.Fprintf(w, "%s\t%s\t%s\n", obj.Name, humanize.IBytes(uint64(obj.Length)), humanize.Time(obj.CreatedTime))
		}
		return w.Flush()
	},
}

var objectPutCmd = &cobra.Command{
	Use:   "put [bucket] [object] [file]",
	Short: "Upload a file as an object",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, logg, err := requireTemplate()
		if err != nil {
			return err
		}

		f, err := os.Open(args[2])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[2], err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", args[2], err)
		}

		contentType, _ := cmd.Flags().GetString("content-type")
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(args[2]))
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		obj, err := tpl.PutObject(cmd.Context(), args[0], args[1], f, info.Size(), contentType)
		if err != nil {
			return err
		}
		logg.Info("Object uploaded",
			zap.String("bucket", obj.BucketName),
			zap.String("object", obj.Name),
			zap.String("size", humanize.IBytes(uint64(obj.Length))))
		return nil
	},
}

var objectStatCmd = &cobra.Command{
	Use:   "stat [bucket] [object]",
	Short: "Show object metadata",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _, err := requireTemplate()
		if err != nil {
			return err
		}
		obj, err := tpl.StatObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printObject(cmd, obj)
		return nil
	},
}

var objectRemoveCmd = &cobra.Command{
	Use:     "rm [bucket] [object]",
	Aliases: []string{"remove"},
	Short:   "Remove an object",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, logg, err := requireTemplate()
		if err != nil {
			return err
		}
		if err := tpl.RemoveObject(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("Object removed", zap.String("bucket", args[0]), zap.String("object", args[1]))
		return nil
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url [bucket] [object]",
	Short: "Print the direct or presigned URL of an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _, err := requireTemplate()
		if err != nil {
			return err
		}
		presign, _ := cmd.Flags().GetBool("presign")
		expires, _ := cmd.Flags().GetDuration("expires")

		var u string
		if presign {
			u, err = tpl.PresignedGetURL(cmd.Context(), args[0], args[1], expires)
		} else {
			u, err = tpl.ObjectURL(cmd.Context(), args[0], args[1])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func printObject(cmd *cobra.Command, obj template.Object) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n--- Object ---")
	fmt.Fprintf(out, "Bucket:        %s\n", obj.BucketName)
	fmt.Fprintf(out, "Name:          %s\n", obj.Name)
	fmt.Fprintf(out, "Size:          %s (%d bytes)\n", humanize.IBytes(uint64(obj.Length)), obj.Length)
	fmt.Fprintf(out, "ETag:          %s\n", obj.ETag)
	fmt.Fprintf(out, "Content-Type:  %s\n", obj.ContentType)
	fmt.Fprintf(out, "Modified:      %s\n", obj.CreatedTime.Format(time.RFC3339))
	if obj.MatDesc != "" {
		fmt.Fprintf(out, "MatDesc:       %s\n", obj.MatDesc)
	}
	fmt.Fprintln(out, "--------------")
}

func init() {
	objectListCmd.Flags().String("prefix", "", "Only list objects under this prefix")
	objectListCmd.Flags().BoolP("recursive", "r", false, "Descend into nested prefixes")
	objectPutCmd.Flags().String("content-type", "", "Content type (guessed from the file extension when empty)")
	objectURLCmd.Flags().Bool("presign", false, "Generate a time-limited presigned URL")
	objectURLCmd.Flags().Duration("expires", template.DefaultExpiry, "Presigned URL lifetime")

	objectCmd.AddCommand(objectListCmd, objectPutCmd, objectStatCmd, objectRemoveCmd, objectURLCmd)
	RootCmd.AddCommand(objectCmd)
}
