package schedulefile

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func TestStoreRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/schedules/ruins.txt", []byte("Mon, 5.3. 14:00\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(fs, "/schedules")

	got, err := store.Read(context.Background(), "ruins.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "Mon, 5.3. 14:00\n" {
		t.Errorf("Read = %q", got)
	}
}

func TestStoreReadMissingFile(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "/schedules")

	got, err := store.Read(context.Background(), "altar.txt")
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if got != "" {
		t.Errorf("missing file content = %q, want empty", got)
	}
}
