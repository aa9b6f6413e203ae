package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// Hard-deleting a student must take the linked account, attendance, marks
// and grievance rows with it, so every foreign key referencing students(id)
// has to cascade or the delete fails with a foreign-key violation.
func TestStudentForeignKeysCascade(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}

	refs := regexp.MustCompile(`REFERENCES students\(id\)[^,\n]*`).FindAllString(string(schema), -1)
	if len(refs) != 4 {
		t.Fatalf("expected 4 foreign keys referencing students(id), found %d", len(refs))
	}
	for _, ref := range refs {
		if !regexp.MustCompile(`ON DELETE CASCADE`).MatchString(ref) {
			t.Errorf("foreign key %q does not cascade on delete", ref)
		}
	}
}
