package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate USER_ID",
	Short: "Activate an invited user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mustClient()
		data, err := client.Post("/api/v1/users/"+args[0]+"/activate", nil)
		if err != nil {
			return err
		}

		var resp UserResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}
		fmt.Printf("User %s is now %s.\n", resp.Email, resp.Status)
		return nil
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate USER_ID",
	Short: "Deactivate a user",
	Long: `Deactivate a user by ID.

Deactivation is terminal: a deactivated user cannot be activated again.
The operation is idempotent, so deactivating twice is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mustClient()
		data, err := client.Post("/api/v1/users/"+args[0]+"/deactivate", nil)
		if err != nil {
			return err
		}

		var resp UserResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}
		fmt.Printf("User %s is now %s.\n", resp.Email, resp.Status)
		return nil
	},
}

var reassignCmd = &cobra.Command{
	Use:   "reassign USER_ID ROLE_ID",
	Short: "Reassign a user to a different role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mustClient()
		body := map[string]any{"role_id": args[1]}
		data, err := client.Put("/api/v1/users/"+args[0]+"/role", body)
		if err != nil {
			return err
		}

		var resp UserResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}
		fmt.Printf("User %s reassigned to role %s.\n", resp.Email, resp.RoleID)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check USER_ID PERMISSION_KEY",
	Short: "Check whether a user holds a permission",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mustClient()
		data, err := client.Get("/api/v1/users/" + args[0] + "/permissions/" + args[1])
		if err != nil {
			return err
		}

		var resp PermissionCheckResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}

		if flagOutput == outputJSON {
			printJSON(resp)
			return nil
		}

		if resp.Granted {
			fmt.Printf("GRANTED  %s has %s\n", resp.UserID, resp.Key)
		} else {
			fmt.Printf("DENIED   %s does not have %s\n", resp.UserID, resp.Key)
		}
		return nil
	},
}

var toggleCategoryCmd = &cobra.Command{
	Use:   "toggle-category ROLE_ID CATEGORY",
	Short: "Toggle all permissions in a category for a role",
	Long: `Toggle a whole permission category on a role.

If the role already holds every permission in the category, all of them
are removed. Otherwise the missing ones are added.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mustClient()
		body := map[string]any{"category": args[1]}
		data, err := client.Post("/api/v1/roles/"+args[0]+"/toggle-category", body)
		if err != nil {
			return err
		}

		var resp RoleResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}
		fmt.Printf("Role %q now holds %d permissions.\n", resp.Name, resp.PermissionCount)
		return nil
	},
}
