package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show detailed information about a resource",
}

var describeRoleCmd = &cobra.Command{
	Use:   "role ID",
	Short: "Show details of a role",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribeRole,
}

var describeUserCmd = &cobra.Command{
	Use:   "user ID",
	Short: "Show details of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribeUser,
}

func init() {
	describeCmd.AddCommand(describeRoleCmd)
	describeCmd.AddCommand(describeUserCmd)
}

func runDescribeRole(cmd *cobra.Command, args []string) error {
	client := mustClient()
	data, err := client.Get("/api/v1/roles/" + args[0])
	if err != nil {
		return err
	}

	var resp RoleResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	switch flagOutput {
	case outputJSON:
		printJSON(resp)
	case outputYAML:
		printYAML(resp)
	default:
		fmt.Printf("ID:           %s\n", resp.ID)
		fmt.Printf("Name:         %s\n", resp.Name)
		fmt.Printf("Description:  %s\n", resp.Description)
		fmt.Printf("Default:      %s\n", boolToStr(resp.IsDefault))
		fmt.Printf("Users:        %d\n", resp.UserCount)
		fmt.Printf("Permissions:  %d\n", resp.PermissionCount)
		for _, p := range resp.Permissions {
			fmt.Printf("  - %s\n", p)
		}
		fmt.Printf("Created At:   %s\n", resp.CreatedAt)
		fmt.Printf("Updated At:   %s\n", resp.UpdatedAt)
	}
	return nil
}

func runDescribeUser(cmd *cobra.Command, args []string) error {
	client := mustClient()
	data, err := client.Get("/api/v1/users/" + args[0])
	if err != nil {
		return err
	}

	var resp UserResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	switch flagOutput {
	case outputJSON:
		printJSON(resp)
	case outputYAML:
		printYAML(resp)
	default:
		fmt.Printf("ID:          %s\n", resp.ID)
		fmt.Printf("Name:        %s\n", resp.Name)
		fmt.Printf("Email:       %s\n", resp.Email)
		fmt.Printf("Role ID:     %s\n", resp.RoleID)
		fmt.Printf("Status:      %s\n", resp.Status)
		fmt.Printf("Joined At:   %s\n", resp.JoinedAt)
		fmt.Printf("Updated At:  %s\n", resp.UpdatedAt)
	}
	return nil
}
