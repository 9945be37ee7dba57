package kmr

// Physical constants in CGS units.
const (
	G    = 6.6743e-8 // gravitational constant [cm^3 g^-1 s^-2]
	C    = 2.9979e10 // speed of light [cm/s]
	Msun = 2.0e33    // solar mass [g]
	Rsun = 7.0e10    // solar radius [cm]
)

// Norm is the empirical normalization bridging the CGS product to the
// dimensionless strain range 1e-24..1e-21. It is a calibration constant,
// not a derived quantity; do not "correct" it.
const Norm = 1e40
