package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todo-list-service/internal/manifest"
)

func newCheckManifestsCommand() *cobra.Command {
	var (
		kubernetesPaths []string
		composePaths    []string
	)

	cmd := &cobra.Command{
		Use:   "check-manifests",
		Short: "Validate the Compose and Kubernetes descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(kubernetesPaths) == 0 && len(composePaths) == 0 {
				return fmt.Errorf("nothing to check: pass --kubernetes and/or --compose")
			}

			failed := 0
			for _, path := range kubernetesPaths {
				problems, err := checkFile(path, checkKubernetesData)
				if err != nil {
					return err
				}
				failed += report(cmd, path, problems)
			}
			for _, path := range composePaths {
				problems, err := checkFile(path, checkComposeData)
				if err != nil {
					return err
				}
				failed += report(cmd, path, problems)
			}

			if failed > 0 {
				return fmt.Errorf("%d descriptor(s) failed validation", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kubernetesPaths, "kubernetes", nil, "Kubernetes manifest to check (repeatable)")
	cmd.Flags().StringSliceVar(&composePaths, "compose", nil, "Compose file to check (repeatable)")

	return cmd
}

func checkFile(path string, check func([]byte) ([]string, error)) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	problems, err := check(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return problems, nil
}

func checkKubernetesData(data []byte) ([]string, error) {
	objs, err := manifest.LoadKubernetes(data)
	if err != nil {
		return nil, err
	}
	return manifest.CheckKubernetes(objs), nil
}

func checkComposeData(data []byte) ([]string, error) {
	f, err := manifest.LoadCompose(data)
	if err != nil {
		return nil, err
	}
	return manifest.CheckCompose(f), nil
}

// report prints the outcome for one file and returns 1 if it has problems.
func report(cmd *cobra.Command, path string, problems []string) int {
	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "ok    %s\n", path)
		return 0
	}
	fmt.Fprintf(out, "FAIL  %s\n", path)
	for _, p := range problems {
		fmt.Fprintf(out, "      - %s\n", p)
	}
	return 1
}
