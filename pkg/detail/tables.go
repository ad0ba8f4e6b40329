package detail

import "github.com/ja7ad/aga8/pkg/composition"

// R is the molar gas constant used by AGA8 DETAIL, J/(mol·K).
const R = 8.31451

const (
	nc     = composition.NumComponents
	nTerms = 58 // equation-of-state terms
	nB     = 18 // terms contributing to the second virial coefficient
)

// Equation-of-state table, AGA Report No. 8 (1994) Table 4. Index n-1 holds term n.
var (
	an = [nTerms]float64{
		0.1538326, 1.341953, -2.998583, -0.04831228, 0.3757965, -1.589575, -0.05358847,
		0.88659463, -0.71023704, -1.471722, 1.32185035, -0.78665925, 2.29129e-9, 0.1576724,
		-0.4363864, -0.04408159, -0.003433888, 0.03205905, 0.02487355, 0.07332279, -0.001600573,
		0.6424706, -0.4162601, -0.06689957, 0.2791795, -0.6966051, -0.002860589, -0.008098836,
		3.150547, 0.007224479, -0.7057529, 0.5349792, -0.07931491, -1.418465, -5.99905e-17,
		0.1058402, 0.03431729, -0.007022847, 0.02495587, 0.04296818, 0.7465453, -0.2919613,
		7.294616, -9.936757, -0.005399808, -0.2432567, 0.04987016, 0.003733797, 1.874951,
		0.002168144, -0.6587164, 0.000205518, 0.009776195, -0.02048708, 0.01557322, 0.006862415,
		-0.001226752, 0.002850908,
	}
	bn = [nTerms]float64{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
		4, 4, 4, 4, 4, 4, 4,
		5, 5, 5, 5, 5,
		6, 6,
		7, 7,
		8, 8, 8,
		9, 9,
	}
	cn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1,
		0, 0, 1, 1, 1, 1, 1, 1, 1,
		0, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 1, 1, 1, 1, 1,
		0, 1, 1, 1, 1,
		0, 1,
		0, 1,
		1, 1, 1,
		1, 1,
	}
	kn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 2, 2, 2, 4, 4,
		0, 0, 2, 2, 2, 4, 4, 4, 4,
		0, 1, 1, 2, 2, 3, 3, 4, 4, 4,
		0, 0, 2, 2, 2, 4, 4,
		0, 2, 2, 4, 4,
		0, 2,
		0, 2,
		1, 2, 2,
		2, 2,
	}
	un = [nTerms]float64{
		0, 0.5, 1, 3.5, -0.5, 4.5, 0.5, 7.5, 9.5, 6, 12, 12.5, -6, 2, 3, 2, 2, 11,
		-0.5, 0.5, 0, 4, 6, 21, 23, 22, -1,
		-0.5, 7, -1, 6, 4, 1, 9, -13, 21, 8,
		-0.5, 0, 2, 7, 9, 22, 23,
		1, 9, 3, 8, 23,
		1.5, 5,
		-0.5, 4,
		7, 3, 0,
		1, 0,
	}
	gn = [nTerms]float64{
		0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 1, 0, 0,
		0, 1, 0, 0, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1,
		0, 0,
		1, 0, 1,
		0, 0,
	}
	qn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 1, 0,
		1, 0, 0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 1, 0, 0,
		0, 0, 1, 0, 1,
		0, 0,
		1, 0,
		0, 0, 0,
		0, 1,
	}
	fn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 1, 0, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0,
		0, 0,
		0, 0, 0,
		0, 0,
	}
	sn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	wn = [nTerms]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0,
	}
)

// Characterization parameters, AGA Report No. 8 Table 5.
//
//	E: energy parameter, K
//	K: size parameter, (m³/kmol)^(1/3)
//	G: orientation parameter
//	Q: quadrupole parameter
//	F: high-temperature parameter
//	S: dipole parameter
//	W: association parameter
type pureParams struct {
	E, K, G, Q, F, S, W float64
}

var _pure = [nc]pureParams{
	composition.Methane:         {E: 151.3183, K: 0.4619255},
	composition.Nitrogen:        {E: 99.73778, K: 0.4479153, G: 0.027815},
	composition.CarbonDioxide:   {E: 241.9606, K: 0.4557489, G: 0.189065, Q: 0.69},
	composition.Ethane:          {E: 244.1667, K: 0.5279209, G: 0.0793},
	composition.Propane:         {E: 298.1183, K: 0.583749, G: 0.141239},
	composition.Isobutane:       {E: 324.0689, K: 0.6406937, G: 0.256692},
	composition.NButane:         {E: 337.6389, K: 0.6341423, G: 0.281835},
	composition.Isopentane:      {E: 365.5999, K: 0.6738577, G: 0.332267},
	composition.NPentane:        {E: 370.6823, K: 0.6798307, G: 0.366911},
	composition.NHexane:         {E: 402.636293, K: 0.7175118, G: 0.289731},
	composition.NHeptane:        {E: 427.72263, K: 0.7525189, G: 0.337542},
	composition.NOctane:         {E: 450.325022, K: 0.784955, G: 0.383381},
	composition.NNonane:         {E: 470.840891, K: 0.8152731, G: 0.427354},
	composition.NDecane:         {E: 489.558373, K: 0.8437826, G: 0.469659},
	composition.Hydrogen:        {E: 26.95794, K: 0.3514916, G: 0.034369, F: 1},
	composition.Oxygen:          {E: 122.7667, K: 0.4186954, G: 0.021},
	composition.CarbonMonoxide:  {E: 105.5348, K: 0.4533894, G: 0.038953},
	composition.Water:           {E: 514.0156, K: 0.3825868, G: 0.3325, Q: 1.06775, S: 1.5822, W: 1},
	composition.HydrogenSulfide: {E: 296.355, K: 0.4618263, G: 0.0885, Q: 0.633276, S: 0.39},
	composition.Helium:          {E: 2.610111, K: 0.3589888},
	composition.Argon:           {E: 119.6299, K: 0.4216551},
}

// Binary interaction parameters, AGA Report No. 8 Table 6. Pairs not listed use 1
// for every parameter; a zero field in an entry also means 1.
type binaryParams struct {
	i, j       composition.Component
	E, U, K, G float64
}

var _binary = []binaryParams{
	{i: composition.Methane, j: composition.Nitrogen, E: 0.97164, U: 0.886106, K: 1.00363},
	{i: composition.Methane, j: composition.CarbonDioxide, E: 0.960644, U: 0.963827, K: 0.995933, G: 0.807653},
	{i: composition.Methane, j: composition.Propane, E: 0.994635, U: 0.990877, K: 1.007619},
	{i: composition.Methane, j: composition.Isobutane, E: 1.01953},
	{i: composition.Methane, j: composition.NButane, E: 0.989844, U: 0.992291, K: 0.997596},
	{i: composition.Methane, j: composition.Isopentane, E: 1.00235},
	{i: composition.Methane, j: composition.NPentane, E: 0.999268, U: 1.00367, K: 1.002529},
	{i: composition.Methane, j: composition.NHexane, E: 1.107274, U: 1.302576, K: 0.982962},
	{i: composition.Methane, j: composition.NHeptane, E: 0.88088, U: 1.191904, K: 0.983565},
	{i: composition.Methane, j: composition.NOctane, E: 0.880973, U: 1.205769, K: 0.982707},
	{i: composition.Methane, j: composition.NNonane, E: 0.881067, U: 1.219634, K: 0.981849},
	{i: composition.Methane, j: composition.NDecane, E: 0.881161, U: 1.233498, K: 0.980991},
	{i: composition.Methane, j: composition.Hydrogen, E: 1.17052, U: 1.15639, K: 1.02326, G: 1.95731},
	{i: composition.Methane, j: composition.CarbonMonoxide, E: 0.990126},
	{i: composition.Methane, j: composition.Water, E: 0.708218},
	{i: composition.Methane, j: composition.HydrogenSulfide, E: 0.931484, U: 0.736833, K: 1.00008},

	{i: composition.Nitrogen, j: composition.CarbonDioxide, E: 1.02274, U: 0.835058, K: 0.982361, G: 0.982746},
	{i: composition.Nitrogen, j: composition.Ethane, E: 0.97012, U: 0.816431, K: 1.00796},
	{i: composition.Nitrogen, j: composition.Propane, E: 0.945939, U: 0.915502},
	{i: composition.Nitrogen, j: composition.Isobutane, E: 0.946914},
	{i: composition.Nitrogen, j: composition.NButane, E: 0.973384, U: 0.993556},
	{i: composition.Nitrogen, j: composition.Isopentane, E: 0.95934},
	{i: composition.Nitrogen, j: composition.NPentane, E: 0.94552},
	{i: composition.Nitrogen, j: composition.Hydrogen, E: 1.08632, U: 0.408838, K: 1.03227},
	{i: composition.Nitrogen, j: composition.Oxygen, E: 1.021},
	{i: composition.Nitrogen, j: composition.CarbonMonoxide, E: 1.00571},
	{i: composition.Nitrogen, j: composition.Water, E: 0.746954},
	{i: composition.Nitrogen, j: composition.HydrogenSulfide, E: 0.902271, U: 0.993476, K: 0.942596},

	{i: composition.CarbonDioxide, j: composition.Ethane, E: 0.925053, U: 0.96987, K: 1.00851, G: 0.370296},
	{i: composition.CarbonDioxide, j: composition.Propane, E: 0.960237},
	{i: composition.CarbonDioxide, j: composition.Isobutane, E: 0.906849},
	{i: composition.CarbonDioxide, j: composition.NButane, E: 0.897362},
	{i: composition.CarbonDioxide, j: composition.Isopentane, E: 0.726255},
	{i: composition.CarbonDioxide, j: composition.NPentane, E: 0.859764},
	{i: composition.CarbonDioxide, j: composition.NHexane, E: 0.855134, U: 1.066638, K: 0.910183},
	{i: composition.CarbonDioxide, j: composition.NHeptane, E: 0.831229, U: 1.077634, K: 0.895362},
	{i: composition.CarbonDioxide, j: composition.NOctane, E: 0.80831, U: 1.088178, K: 0.881152},
	{i: composition.CarbonDioxide, j: composition.NNonane, E: 0.786323, U: 1.098291, K: 0.86752},
	{i: composition.CarbonDioxide, j: composition.NDecane, E: 0.765171, U: 1.108021, K: 0.854406},
	{i: composition.CarbonDioxide, j: composition.Hydrogen, E: 1.28179},
	{i: composition.CarbonDioxide, j: composition.CarbonMonoxide, E: 1.5, U: 0.9},
	{i: composition.CarbonDioxide, j: composition.Water, E: 0.849408, G: 1.67309},
	{i: composition.CarbonDioxide, j: composition.HydrogenSulfide, E: 0.955052, U: 1.04529, K: 1.00779},

	{i: composition.Ethane, j: composition.Propane, E: 1.02256, U: 1.065173, K: 0.986893},
	{i: composition.Ethane, j: composition.Isobutane, U: 1.25},
	{i: composition.Ethane, j: composition.NButane, E: 1.01306, U: 1.25},
	{i: composition.Ethane, j: composition.Isopentane, U: 1.25},
	{i: composition.Ethane, j: composition.NPentane, E: 1.00532, U: 1.25},
	{i: composition.Ethane, j: composition.Hydrogen, E: 1.16446, U: 1.61666, K: 1.02034},
	{i: composition.Ethane, j: composition.Water, E: 0.693168},
	{i: composition.Ethane, j: composition.HydrogenSulfide, E: 0.946871, U: 0.971926, K: 0.999969},

	{i: composition.Propane, j: composition.NButane, E: 1.0049},
	{i: composition.Propane, j: composition.Hydrogen, E: 1.034787},
	{i: composition.Isobutane, j: composition.Hydrogen, E: 1.3},
	{i: composition.NButane, j: composition.Hydrogen, E: 1.3},

	{i: composition.NHexane, j: composition.HydrogenSulfide, E: 1.008692, U: 1.028973, K: 0.96813},
	{i: composition.NHeptane, j: composition.HydrogenSulfide, E: 1.010126, U: 1.033754, K: 0.96287},
	{i: composition.NOctane, j: composition.HydrogenSulfide, E: 1.011501, U: 1.038338, K: 0.957828},
	{i: composition.NNonane, j: composition.HydrogenSulfide, E: 1.012821, U: 1.042735, K: 0.952441},
	{i: composition.NDecane, j: composition.HydrogenSulfide, E: 1.014089, U: 1.046966, K: 0.948338},

	{i: composition.Hydrogen, j: composition.CarbonMonoxide, E: 1.1},
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
