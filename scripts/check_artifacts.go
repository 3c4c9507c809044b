package main

import (
	"log"
	"sort"

	"alfredoptarigan/resume-screener/internal/artifacts"
	"alfredoptarigan/resume-screener/internal/config"
)

// Operator tool: load the exported model artifacts and verify they are
// consistent with each other before deploying them. Catches the
// role-classifier/role-model mismatch class of bugs at deploy time instead
// of per request.
func main() {
	log.Println("🚀 Checking model artifacts...")

	cfg := config.Load()
	log.Printf("   Artifacts dir: %s", cfg.Artifacts.Dir)

	bundle, err := artifacts.Load(cfg.Artifacts.Dir)
	if err != nil {
		log.Fatalf("❌ Artifact bundle failed validation: %v", err)
	}

	log.Printf("✅ Bundle loaded and validated")
	log.Printf("   Feature width:   %d (2 + %d vocabulary terms)", bundle.FeatureWidth(), bundle.Vectorizer.Width())
	log.Printf("   Classifier:      %d classes", len(bundle.RoleClassifier.Classes()))
	log.Printf("   Education codes: %d categories", len(bundle.Encoder.ClassLabels))

	roles := make([]string, 0, len(bundle.RoleModels))
	for role := range bundle.RoleModels {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	log.Printf("   Role models:     %d", len(roles))
	for _, role := range roles {
		model := bundle.RoleModels[role]
		log.Printf("     - %s (classes: %v)", role, model.Classes())
	}

	log.Println("✅ All artifacts consistent")
}
