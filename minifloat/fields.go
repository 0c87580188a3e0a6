package minifloat

// Formats of the persisted record fields. Each field owns its format; changing one
// invalidates previously written data for that field.
var (
	WeightFormat          = Format{Signed: true, MantissaBits: 10, ExponentBits: 5, Bias: 14, Underflow: UnderflowClamp}
	PdfXFormat            = Format{MantissaBits: 13, ExponentBits: 3, Bias: 7, Underflow: UnderflowSubnormal}
	PdfQScaleFormat       = Format{MantissaBits: 12, ExponentBits: 4, Bias: 0, Underflow: UnderflowClamp}
	RelIsoFormat          = Format{MantissaBits: 13, ExponentBits: 3, Bias: 1, Underflow: UnderflowSubnormal}
	ImpactParameterFormat = Format{MantissaBits: 13, ExponentBits: 3, Bias: 1, Underflow: UnderflowSubnormal}
	RhoFormat             = Format{MantissaBits: 12, ExponentBits: 4, Bias: 2, Underflow: UnderflowSubnormal}
	TrueNumPUFormat       = Format{MantissaBits: 12, ExponentBits: 4, Bias: 2, Underflow: UnderflowSubnormal}
)

// Field codecs.
var (
	Weight          = MustNew[uint16](WeightFormat)          // event weight
	PdfX            = MustNew[uint16](PdfXFormat)            // parton momentum fraction
	PdfQScale       = MustNew[uint16](PdfQScaleFormat)       // PDF factorization scale
	RelIso          = MustNew[uint16](RelIsoFormat)          // lepton relative isolation
	ImpactParameter = MustNew[uint16](ImpactParameterFormat) // lepton transverse impact parameter
	Rho             = MustNew[uint16](RhoFormat)             // pile-up energy density
	TrueNumPU       = MustNew[uint16](TrueNumPUFormat)       // true mean number of pile-up interactions
)

// Field names a persisted field format.
type Field struct {
	Name   string
	Format Format
}

// Fields returns the formats of all persisted fields in a stable order.
func Fields() []Field {
	return []Field{
		{Name: "weight", Format: WeightFormat},
		{Name: "pdfX", Format: PdfXFormat},
		{Name: "pdfQScale", Format: PdfQScaleFormat},
		{Name: "relIso", Format: RelIsoFormat},
		{Name: "dB", Format: ImpactParameterFormat},
		{Name: "rho", Format: RhoFormat},
		{Name: "trueNumPU", Format: TrueNumPUFormat},
	}
}
