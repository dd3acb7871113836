package catalog

import (
	"github.com/aretw0/labscout/pkg/domain"
)

// Default returns the compiled-in knowledge base: the expert URS entries the
// consultant recommends from. The catalog is static by design; it is not
// loaded from an external file and does not grow at runtime.
func Default() *Catalog {
	return MustNew(builtinEntries)
}

var builtinEntries = []Entry{
	{
		Domain: "weighing",
		Solutions: []domain.SolutionDescriptor{
			{
				Name: "Automated Weighing Station (URS APL01)",
				Description: "An automated or semi-automated station to replace manual weighing. " +
					"Handles weighing compounds from 0.2mg - 100g and supports one-to-many, " +
					"one-to-one, and many-to-one workflows.",
				VendorHints: []string{"(Vendor research needed)"},
				BudgetRange: "$70,000 - $200,000",
				KeyRequirements: []string{
					"Handle solids (powders, flakes, etc) and liquids",
					"Read/produce barcodes",
					"Throughput: 84+ compounds/day",
					"Import/export worklists (csv, xml)",
				},
			},
			{
				Name: "Manual Computer-Assisted Weighing Station (URS APL02)",
				Description: "A simpler station that assists a human user. It displays target " +
					"weights, automatically records the weight, and steps through a compound list.",
				VendorHints: []string{"(Vendor research needed)"},
				BudgetRange: "$10,000 - $40,000",
				KeyRequirements: []string{
					"Assist user by displaying target weight",
					"Read barcodes from source/destination containers",
					"Import/export worklists (csv)",
				},
			},
		},
	},
	{
		Domain: "sample_handling_logistics",
		Solutions: []domain.SolutionDescriptor{
			{
				Name: "Logistics Robot 1: Tube Handling & Weighing (URS APL07)",
				Description: "A logistics robot to fix the bottleneck of manually handling " +
					"23,000+ tubes/year. It automates labeling, barcoding, weighing, and " +
					"pick & place operations.",
				VendorHints: []string{"(Vendor research needed)"},
				BudgetRange: "$150,000 - $300,000",
				KeyRequirements: []string{
					"Pick & place tubes between different rack types (e.g., rack80 to Genevac racks)",
					"Weigh and barcode >25,000 tubes/year",
					"Weigh rack of 24 tubes in < 20 min",
					"Controlled via API / worklists",
				},
			},
			{
				Name: "Logistics Robot 2: Liquid Handling (URS APL08)",
				Description: "A logistics robot focused on liquid handling steps for synthesis " +
					"and purification.",
				VendorHints: []string{"(Vendor research needed)"},
				BudgetRange: "$100,000 - $250,000",
				KeyRequirements: []string{
					"Aspirate/dispense volumes from 5µl to 30ml",
					"Pool fractions from rack-to-rack",
					"Redissolve dried fractions in racks",
					"Controlled via API / worklists",
				},
			},
		},
	},
}
