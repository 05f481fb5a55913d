// Package photon implements the closed-form physics of the photoelectric
// effect used by the simulator.
//
//   - [PhotonEnergy]: E = hc/λ, in electronvolts
//   - [Metal] and [MetalInfo]: cathode materials and their work functions
//   - [Evaluate]: photon energy, kinetic energy, stopping voltage and current
//   - [ExpNumber]: scientific notation for displaying small currents
//
// # Current model
//
// Photocurrent saturates at a value proportional to light intensity. A
// positive (accelerating) anode voltage collects every emitted electron. A
// negative (retarding) voltage reduces the current linearly until it reaches
// zero at the stopping voltage.
package photon
