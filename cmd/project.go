// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// projectCmd groups the admin operations on projects
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage gated projects",
	Long:  `Create, inspect and update the projects applicants can apply to.`,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		slug, _ := cmd.Flags().GetString("slug")
		description, _ := cmd.Flags().GetString("description")
		destinationURL, _ := cmd.Flags().GetString("destination-url")
		destinationType, _ := cmd.Flags().GetString("destination-type")
		preset, _ := cmd.Flags().GetString("criteria-preset")
		manualReview, _ := cmd.Flags().GetBool("manual-review")

		body := map[string]interface{}{
			"name":             name,
			"slug":             slug,
			"description":      description,
			"destination_url":  destinationURL,
			"destination_type": destinationType,
			"criteria_preset":  preset,
			"manual_review":    manualReview,
		}

		return callAPI(cmd, http.MethodPost, "/api/v0/projects", body)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodGet, "/api/v0/projects", nil)
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodGet, "/api/v0/projects/"+args[0], nil)
	},
}

var projectDeactivateCmd = &cobra.Command{
	Use:   "deactivate <slug>",
	Short: "Stop accepting applications for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]interface{}{"active": false}
		return callAPI(cmd, http.MethodPatch, "/api/v0/projects/"+args[0], body)
	},
}

func init() {
	projectCreateCmd.Flags().String("name", "", "Project name")
	projectCreateCmd.Flags().String("slug", "", "URL friendly identifier")
	projectCreateCmd.Flags().String("description", "", "Project description")
	projectCreateCmd.Flags().String("destination-url", "", "Where accepted applicants are sent")
	projectCreateCmd.Flags().String("destination-type", "discord", "Destination type (discord or beta)")
	projectCreateCmd.Flags().String("criteria-preset", "standard", "Eligibility preset (basic, standard or strict)")
	projectCreateCmd.Flags().Bool("manual-review", false, "Queue passing applications for manual review")
	_ = projectCreateCmd.MarkFlagRequired("name")
	_ = projectCreateCmd.MarkFlagRequired("slug")
	_ = projectCreateCmd.MarkFlagRequired("destination-url")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectDeactivateCmd)
	rootCmd.AddCommand(projectCmd)
}

func callAPI(cmd *cobra.Command, method, path string, body interface{}) error {
	endpoint := strings.TrimSuffix(httpEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		cmd.Println(string(raw))
		return nil
	}
	cmd.Println(pretty.String())

	return nil
}
