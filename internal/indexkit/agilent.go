package indexkit

// DefaultKitName is the kit used when no --kit file is supplied.
const DefaultKitName = "agilent-sureselect"

// agilentSureSelect is the built-in Agilent SureSelect index set.
// P7_* indexes sit in the i7 read position, P5_* in the i5 position.
var agilentSureSelect = &Kit{
	Name: DefaultKitName,
	Indexes: map[string]string{
		"P7_i1":  "TAAGGCGA",
		"P7_i2":  "CGTACTAG",
		"P7_i3":  "AGGCAGAA",
		"P7_i4":  "TCCTGAGC",
		"P7_i5":  "GTAGAGGA",
		"P7_i6":  "TAGGCATG",
		"P7_i7":  "CTCTCTAC",
		"P7_i8":  "CAGAGAGG",
		"P7_i9":  "GCTACGCT",
		"P7_i10": "CGAGGCTG",
		"P7_i11": "AAGAGGCA",
		"P7_i12": "GGACTCCT",
		"P5_i13": "GCGATCTA",
		"P5_i14": "ATAGAGAG",
		"P5_i15": "AGAGGATA",
		"P5_i16": "TCTACTCT",
		"P5_i17": "CTCCTTAC",
		"P5_i18": "TATGCAGT",
		"P5_i19": "TACTCCTT",
		"P5_i20": "AGGCTTAG",
	},
}

// Default returns the built-in Agilent SureSelect kit.
func Default() *Kit {
	return agilentSureSelect
}
