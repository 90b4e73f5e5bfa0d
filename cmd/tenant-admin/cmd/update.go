package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update resources",
}

var updateRoleCmd = &cobra.Command{
	Use:   "role ID",
	Short: "Update a role",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateRole,
}

var updateCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Update company settings",
	RunE:  runUpdateCompany,
}

func init() {
	updateRoleCmd.Flags().String("name", "", "New role name")
	updateRoleCmd.Flags().String("description", "", "New description")
	updateRoleCmd.Flags().StringSlice("permissions", nil, "Replace the permission set")
	updateRoleCmd.Flags().Bool("default", false, "Mark as the default role")

	updateCompanyCmd.Flags().String("name", "", "Company name")
	updateCompanyCmd.Flags().String("logo-url", "", "Logo URL")
	updateCompanyCmd.Flags().String("primary-color", "", "Primary brand color (hex)")
	updateCompanyCmd.Flags().String("secondary-color", "", "Secondary brand color (hex)")
	updateCompanyCmd.Flags().String("domain", "", "Company domain")
	updateCompanyCmd.Flags().String("plan", "", "Subscription plan (starter, growth, enterprise)")

	updateCmd.AddCommand(updateRoleCmd)
	updateCmd.AddCommand(updateCompanyCmd)
}

func runUpdateRole(cmd *cobra.Command, args []string) error {
	client := mustClient()

	body := map[string]any{}
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		body["name"] = v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		body["description"] = v
	}
	if cmd.Flags().Changed("permissions") {
		v, _ := cmd.Flags().GetStringSlice("permissions")
		body["permissions"] = v
	}
	if cmd.Flags().Changed("default") {
		v, _ := cmd.Flags().GetBool("default")
		body["is_default"] = v
	}

	if len(body) == 0 {
		return fmt.Errorf("nothing to update: pass at least one flag")
	}

	data, err := client.Patch("/api/v1/roles/"+args[0], body)
	if err != nil {
		return err
	}

	var resp RoleResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	if flagOutput == outputJSON {
		printJSON(resp)
		return nil
	}
	if flagOutput == outputYAML {
		printYAML(resp)
		return nil
	}

	fmt.Printf("Role %q updated (%d permissions)\n", resp.Name, resp.PermissionCount)
	return nil
}

func runUpdateCompany(cmd *cobra.Command, args []string) error {
	client := mustClient()

	body := map[string]any{}
	for flag, field := range map[string]string{
		"name":            "name",
		"logo-url":        "logo_url",
		"primary-color":   "primary_color",
		"secondary-color": "secondary_color",
		"domain":          "domain",
		"plan":            "plan",
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			body[field] = v
		}
	}

	if len(body) == 0 {
		return fmt.Errorf("nothing to update: pass at least one flag")
	}

	data, err := client.Patch("/api/v1/company", body)
	if err != nil {
		return err
	}

	var resp CompanyResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	if flagOutput == outputJSON {
		printJSON(resp)
		return nil
	}
	if flagOutput == outputYAML {
		printYAML(resp)
		return nil
	}

	fmt.Printf("Company %q updated (plan: %s)\n", resp.Name, resp.Plan)
	return nil
}
