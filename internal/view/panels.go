package view

import (
	"fmt"

	"github.com/san-kum/photosim/internal/photon"
)

// Readout is one labelled line of text in a panel.
type Readout struct {
	Label string
	Value string
}

// OutcomePanel shows the computed quantities as text.
type OutcomePanel struct {
	exitEnergy   string
	photonEnergy string
	current      string
}

func NewOutcomePanel() *OutcomePanel {
	return &OutcomePanel{
		exitEnergy:   formatEnergy(0),
		photonEnergy: formatEnergy(0),
		current:      photon.ExpNumber{}.Format("A"),
	}
}

func (p *OutcomePanel) SetExitEnergyDisplay(eV float64) {
	p.exitEnergy = formatEnergy(eV)
}

func (p *OutcomePanel) SetPhotonEnergyDisplay(eV float64) {
	p.photonEnergy = formatEnergy(eV)
}

func (p *OutcomePanel) SetCurrentDisplay(current photon.ExpNumber) {
	p.current = current.Format("A")
}

func (p *OutcomePanel) Readouts() []Readout {
	return []Readout{
		{"photon energy", p.photonEnergy},
		{"work function", p.exitEnergy},
		{"current", p.current},
	}
}

func formatEnergy(eV float64) string {
	return fmt.Sprintf("%.3f eV", eV)
}

// InfoPanel describes the selected cathode metal.
type InfoPanel struct {
	info photon.MetalInfo
	set  bool
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{}
}

func (p *InfoPanel) ChangeElement(info photon.MetalInfo) {
	p.info = info
	p.set = true
}

func (p *InfoPanel) Element() (photon.MetalInfo, bool) {
	return p.info, p.set
}

func (p *InfoPanel) Readouts() []Readout {
	if !p.set {
		return []Readout{{"metal", "-"}}
	}
	return []Readout{
		{"metal", fmt.Sprintf("%s (%s)", p.info.Name, p.info.Symbol)},
		{"work function", formatEnergy(p.info.WorkFunction)},
		{"threshold", fmt.Sprintf("%.0f nm", p.info.ThresholdWavelength())},
	}
}
