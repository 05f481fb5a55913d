package controller_test

import (
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/photon"
)

type fakeDisplay struct {
	element      string
	exitEnergy   float64
	photonEnergy float64
	current      photon.ExpNumber
	intensity    int
	wavelength   int
	voltage      float64
	calls        int
	failElement  error
}

func (f *fakeDisplay) SetElementType(name string) error {
	f.calls++
	if f.failElement != nil {
		return f.failElement
	}
	f.element = name
	return nil
}
func (f *fakeDisplay) SetExitEnergy(eV float64) { f.calls++; f.exitEnergy = eV }
func (f *fakeDisplay) SetOutcomeCurrent(c photon.ExpNumber) { f.calls++; f.current = c }
func (f *fakeDisplay) SetPhotonEnergy(eV float64) { f.calls++; f.photonEnergy = eV }
func (f *fakeDisplay) SetLightIntensity(intensity int) { f.calls++; f.intensity = intensity }
func (f *fakeDisplay) SetWavelength(wavelength int) { f.calls++; f.wavelength = wavelength }
func (f *fakeDisplay) SetVoltage(voltage float64) { f.calls++; f.voltage = voltage }

var _ = Describe("Controller", func() {
	var (
		ctrl    *controller.Controller
		display *fakeDisplay
		logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	)

	BeforeEach(func() {
		ctrl = controller.New(photon.Inputs{Metal: photon.Sodium, Wavelength: 400, Intensity: 50}, logger)
		display = &fakeDisplay{}
	})

	Describe("Attach", func() {
		It("pushes the full state to the display", func() {
			Expect(ctrl.Attach(display)).To(Succeed())

			Expect(display.element).To(Equal("sodium"))
			Expect(display.intensity).To(Equal(50))
			Expect(display.wavelength).To(Equal(400))
			Expect(display.exitEnergy).To(Equal(2.36))
			Expect(display.photonEnergy).To(BeNumerically("~", 3.0996, 1e-3))
			Expect(display.current.Float64()).To(BeNumerically("~", 5e-7, 1e-18))
		})

		It("reports display failures", func() {
			display.failElement = errors.New("boom")
			Expect(ctrl.Attach(display)).To(MatchError("boom"))
		})
	})

	Context("with an attached display", func() {
		BeforeEach(func() {
			Expect(ctrl.Attach(display)).To(Succeed())
		})

		It("clamps intensity to the slider range", func() {
			ctrl.ChangeIntensity(250)
			Expect(ctrl.Inputs().Intensity).To(Equal(100.0))
			Expect(display.intensity).To(Equal(100))

			ctrl.ChangeIntensity(-3)
			Expect(display.intensity).To(Equal(0))
			Expect(display.current.IsZero()).To(BeTrue())
		})

		It("stops emission below the threshold wavelength", func() {
			ctrl.ChangeWavelength(700)
			Expect(display.wavelength).To(Equal(700))
			Expect(ctrl.Outcome().Emitting()).To(BeFalse())
			Expect(display.current.IsZero()).To(BeTrue())
		})

		It("cuts the current off past the stopping voltage", func() {
			ctrl.ChangeVoltage(-5)
			Expect(display.voltage).To(Equal(-5.0))
			Expect(display.current.IsZero()).To(BeTrue())

			ctrl.ChangeVoltage(42)
			Expect(display.voltage).To(Equal(controller.MaxVoltage))
			Expect(display.current.IsZero()).To(BeFalse())
		})

		It("switches the cathode metal", func() {
			Expect(ctrl.ChangeElement("Pt")).To(Succeed())
			Expect(display.element).To(Equal("platinum"))
			Expect(display.exitEnergy).To(Equal(5.65))
			Expect(display.current.IsZero()).To(BeTrue())
		})

		It("keeps the outcome in step with the inputs when the display fails", func() {
			display.failElement = errors.New("no such panel")
			Expect(ctrl.ChangeElement("zinc")).To(MatchError("no such panel"))

			Expect(ctrl.Inputs().Metal).To(Equal(photon.Zinc))
			Expect(ctrl.Outcome()).To(Equal(photon.Evaluate(ctrl.Inputs())))
			Expect(ctrl.Outcome().ExitEnergy).To(Equal(4.33))
			Expect(display.exitEnergy).To(Equal(4.33))
		})

		It("rejects unknown metals without touching the display", func() {
			before := display.calls
			err := ctrl.ChangeElement("kryptonite")
			Expect(err).To(MatchError(photon.ErrUnknownMetal))
			Expect(display.calls).To(Equal(before))
			Expect(ctrl.Inputs().Metal).To(Equal(photon.Sodium))
		})
	})

	It("works without a display", func() {
		ctrl.ChangeWavelength(250)
		Expect(ctrl.Outcome().PhotonEnergy).To(BeNumerically(">", 4.9))
	})
})
