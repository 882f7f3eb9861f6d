package core_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xiebaiyuan/buildsweep/pkg/core"
)

func Example() {
	dir, _ := os.MkdirTemp("", "sweep")
	defer os.RemoveAll(dir)
	_ = os.MkdirAll(filepath.Join(dir, "proj", "build"), 0o755)
	_ = os.WriteFile(filepath.Join(dir, "proj", "build", "a.o"), []byte("x"), 0o644)

	res, err := core.Clean(core.Config{Root: dir, DryRun: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Entries {
		fmt.Println(e.Rel)
	}
	fmt.Println("would remove:", res.Tally.Succeeded)
	// Output:
	// proj/build
	// would remove: 1
}
