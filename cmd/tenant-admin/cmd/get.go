package cmd

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "List resources",
}

var getRolesCmd = &cobra.Command{
	Use:     "roles",
	Aliases: []string{"role"},
	Short:   "List roles",
	RunE:    runGetRoles,
}

var getUsersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "List users",
	RunE:    runGetUsers,
}

var getPermissionsCmd = &cobra.Command{
	Use:     "permissions",
	Aliases: []string{"permission", "perms"},
	Short:   "List the permission catalog",
	RunE:    runGetPermissions,
}

func init() {
	getUsersCmd.Flags().StringP("search", "q", "", "Filter by name or email substring")
	getPermissionsCmd.Flags().Bool("by-category", false, "Group permissions by category")

	getCmd.AddCommand(getRolesCmd)
	getCmd.AddCommand(getUsersCmd)
	getCmd.AddCommand(getPermissionsCmd)
}

func runGetRoles(cmd *cobra.Command, args []string) error {
	client := mustClient()

	data, err := client.Get("/api/v1/roles")
	if err != nil {
		return err
	}

	var resp RoleListResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	switch flagOutput {
	case outputJSON:
		printJSON(resp)
	case outputYAML:
		printYAML(resp)
	case outputWide:
		t := newTable("ID", "NAME", "PERMISSIONS", "USERS", "DEFAULT", "CREATED")
		for _, r := range resp.Roles {
			t.AddRow(r.ID, r.Name, strconv.Itoa(r.PermissionCount), strconv.Itoa(r.UserCount), boolToStr(r.IsDefault), shortTime(r.CreatedAt))
		}
		t.Flush()
	default:
		t := newTable("ID", "NAME", "PERMISSIONS", "USERS", "DEFAULT")
		for _, r := range resp.Roles {
			t.AddRow(truncate(r.ID, 12), r.Name, strconv.Itoa(r.PermissionCount), strconv.Itoa(r.UserCount), boolToStr(r.IsDefault))
		}
		t.Flush()
	}
	return nil
}

func runGetUsers(cmd *cobra.Command, args []string) error {
	client := mustClient()

	params := url.Values{}
	if v, _ := cmd.Flags().GetString("search"); v != "" {
		params.Set("q", v)
	}

	path := "/api/v1/users"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	data, err := client.Get(path)
	if err != nil {
		return err
	}

	var resp UserListResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	switch flagOutput {
	case outputJSON:
		printJSON(resp)
	case outputYAML:
		printYAML(resp)
	case outputWide:
		t := newTable("ID", "NAME", "EMAIL", "ROLE ID", "STATUS", "JOINED")
		for _, u := range resp.Users {
			t.AddRow(u.ID, u.Name, u.Email, u.RoleID, u.Status, shortTime(u.JoinedAt))
		}
		t.Flush()
	default:
		t := newTable("ID", "NAME", "EMAIL", "STATUS")
		for _, u := range resp.Users {
			t.AddRow(truncate(u.ID, 12), u.Name, u.Email, u.Status)
		}
		t.Flush()
	}
	return nil
}

func runGetPermissions(cmd *cobra.Command, args []string) error {
	client := mustClient()

	byCategory, _ := cmd.Flags().GetBool("by-category")
	if byCategory {
		data, err := client.Get("/api/v1/permissions/categories")
		if err != nil {
			return err
		}

		var resp []CategoryResponse
		if err := unmarshal(data, &resp); err != nil {
			return err
		}

		switch flagOutput {
		case outputJSON:
			printJSON(resp)
		case outputYAML:
			printYAML(resp)
		default:
			t := newTable("CATEGORY", "KEY", "LABEL")
			for _, c := range resp {
				for _, p := range c.Permissions {
					t.AddRow(c.Category, p.Key, p.Label)
				}
			}
			t.Flush()
		}
		return nil
	}

	data, err := client.Get("/api/v1/permissions")
	if err != nil {
		return err
	}

	var resp PermissionListResponse
	if err := unmarshal(data, &resp); err != nil {
		return err
	}

	switch flagOutput {
	case outputJSON:
		printJSON(resp)
	case outputYAML:
		printYAML(resp)
	default:
		t := newTable("KEY", "LABEL", "CATEGORY")
		for _, p := range resp.Permissions {
			t.AddRow(p.Key, p.Label, p.Category)
		}
		t.Flush()
	}
	return nil
}
