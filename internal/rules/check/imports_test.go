package check

import (
	"strings"
	"testing"

	"github.com/donaldgifford/hstyle/internal/syntax"
)

func importCfg() *ImportOrder {
	cfg := defaults()
	cfg.LocalPrefixes = []string{"Acme"}
	return NewImportOrder(cfg)
}

func TestImportOrderLocalFirst(t *testing.T) {
	r := importCfg()

	src := "import Data.List\nimport Acme.Rocket\n"
	mod := node(syntax.KindModule, span(1, 1, 2, 19),
		node(syntax.KindImport, span(1, 1, 1, 17)),
		node(syntax.KindImport, span(2, 1, 2, 19)))
	m := model(t, mod, src)

	v := r.Check(mod, m.Info(mod), m)
	if v == nil {
		t.Fatal("trailing local import not flagged")
	}
	if !strings.Contains(v.Message, "Acme.Rocket") {
		t.Errorf("message does not name the import: %q", v.Message)
	}
}

func TestImportOrderAlphabetical(t *testing.T) {
	r := importCfg()

	src := "import Zeta\nimport Alpha\n"
	mod := node(syntax.KindModule, span(1, 1, 2, 13),
		node(syntax.KindImport, span(1, 1, 1, 12)),
		node(syntax.KindImport, span(2, 1, 2, 13)))
	m := model(t, mod, src)

	v := r.Check(mod, m.Info(mod), m)
	if v == nil {
		t.Fatal("unsorted imports not flagged")
	}
	if !strings.Contains(v.Message, "Alpha sorts before Zeta") {
		t.Errorf("unexpected message: %q", v.Message)
	}
}

func TestImportOrderAccepts(t *testing.T) {
	r := importCfg()

	src := "import Acme.Pad\n\nimport Data.List\nimport Data.Map\n"
	mod := node(syntax.KindModule, span(1, 1, 4, 16),
		node(syntax.KindImport, span(1, 1, 1, 16)),
		node(syntax.KindImport, span(3, 1, 3, 17)),
		node(syntax.KindImport, span(4, 1, 4, 16)))
	m := model(t, mod, src)

	if v := r.Check(mod, m.Info(mod), m); v != nil {
		t.Errorf("grouped, sorted imports flagged: %v", v.Message)
	}
}

func TestImportNameSkipsQualified(t *testing.T) {
	if got := importName("import qualified Data.Map as M"); got != "Data.Map" {
		t.Errorf("importName = %q, want Data.Map", got)
	}
	if got := importName("import Acme.Pad (launch)"); got != "Acme.Pad" {
		t.Errorf("importName = %q, want Acme.Pad", got)
	}
}
