// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/vault-service/internal/authorization"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/openfga"
	"github.com/canonical/vault-service/internal/tracing"
)

const StoreName = "vault-service"

// the keys match the env vars serve reads, so the ConfigMap can be mounted with envFrom
const (
	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaIDs struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

// createFgaModelCmd represents the createFgaModel command
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Writes the vault authorization model to openfga",
	Long:  `Writes the vault owner/admin/member model to openfga, creating the store when no id is given`,
	RunE:  runCreateFgaModel,
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	createFgaModelCmd.MarkFlagRequired("fga-api-url")
	createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func runCreateFgaModel(cmd *cobra.Command, args []string) error {
	apiURL, _ := cmd.Flags().GetString("fga-api-url")
	apiToken, _ := cmd.Flags().GetString("fga-api-token")
	storeID, _ := cmd.Flags().GetString("fga-store-id")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
	kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

	ids, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
	if err != nil {
		return err
	}

	if configMapResource != "" {
		clientset, err := kubernetesClient(kubeconfigPath)
		if err != nil {
			return err
		}
		if err := storeIDsInConfigMap(cmd.Context(), clientset, configMapResource, ids); err != nil {
			return fmt.Errorf("failed to update configmap: %w", err)
		}
		cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(ids)
	}

	cmd.Printf("Created model: %s\n", ids.ModelID)
	if storeID == "" {
		cmd.Printf("Created store: %s\n", ids.StoreID)
	}
	return nil
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*fgaIDs, error) {
	logger := logging.NewNoopLogger()

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	// built directly to skip the model id validation NewConfig does
	fgaClient := openfga.NewClient(&openfga.Config{
		ApiScheme: u.Scheme,
		ApiHost:   u.Host,
		StoreID:   storeID,
		ApiToken:  apiToken,
		Debug:     verbose,
		Tracer:    tracing.NewNoopTracer(),
		Monitor:   monitoring.NewNoopMonitor(StoreName, logger),
		Logger:    logger,
	})

	if storeID == "" {
		if storeID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		fgaClient.SetStoreID(ctx, storeID)
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelID, err := fgaClient.WriteModel(ctx, &client.ClientWriteAuthorizationModelRequest{
		TypeDefinitions: model.TypeDefinitions,
		SchemaVersion:   model.SchemaVersion,
		Conditions:      model.Conditions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &fgaIDs{StoreID: storeID, ModelID: modelID}, nil
}

func kubernetesClient(kubeconfigPath string) (kubernetes.Interface, error) {
	var config *rest.Config
	var err error

	if kubeconfigPath != "" {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	} else if config, err = rest.InClusterConfig(); err != nil {
		// running outside a cluster, use the default kubeconfig chain
		kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(),
			&clientcmd.ConfigOverrides{},
		)
		config, err = kubeConfig.ClientConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}

// storeIDsInConfigMap upserts the openfga ids into the namespace/name ConfigMap.
func storeIDsInConfigMap(ctx context.Context, clientset kubernetes.Interface, resource string, ids *fgaIDs) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", resource)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{storeIDKey: ids.StoreID, modelIDKey: ids.ModelID},
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	cm.Data[storeIDKey] = ids.StoreID
	cm.Data[modelIDKey] = ids.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}

	return nil
}
