package rules

import (
	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/rules/check"
	"github.com/donaldgifford/hstyle/internal/style"
)

func init() {
	// Rules are registered in guide section order: indentation, line
	// length, module header, exports, imports, declarations, data types,
	// expressions, do-notation, let/where, space-salvage, collections,
	// if-alignment, case-alignment.
	reg := func(f func(cfg *config.StyleConfig) style.Rule) { register(f) }

	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewTwoSpaceIndent(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewLineLength(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewModuleHeaderDoc() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewExplicitExports() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewExportAlign(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewImportOrder(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewDeclBlankLines() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewSignatureDoc() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewDataAlternatives() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewDerivingParens() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewRecordFieldAlign() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewApplicationLayout(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewOperatorAlign(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewCompositionChain(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewDoLetOrder() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewLetPreferWhere() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewWhereClause(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewSpaceSalvage(cfg) })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewCollectionLayout() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewIfAlign() })
	reg(func(cfg *config.StyleConfig) style.Rule { return check.NewCaseArrows() })
}
