package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete resources",
}

var deleteRoleCmd = &cobra.Command{
	Use:   "role ID",
	Short: "Delete a role",
	Long: `Delete a role by ID.

The API refuses to delete a role that is still assigned to any user.
Reassign those users first, then retry.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteRole,
}

func init() {
	deleteRoleCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	deleteCmd.AddCommand(deleteRoleCmd)
}

func runDeleteRole(cmd *cobra.Command, args []string) error {
	client := mustClient()

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Printf("Delete role %s? [y/N]: ", args[0])
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := client.Delete("/api/v1/roles/" + args[0]); err != nil {
		return err
	}

	fmt.Printf("Role %s deleted.\n", args[0])
	return nil
}
