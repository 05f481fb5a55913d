package view_test

import (
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/photon"
	"github.com/san-kum/photosim/internal/scene"
	"github.com/san-kum/photosim/internal/view"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func readout(rs []view.Readout, label string) string {
	for _, r := range rs {
		if r.Label == label {
			return r.Value
		}
	}
	return ""
}

var _ = Describe("View", func() {
	var v *view.View

	BeforeEach(func() {
		v = view.New(quiet)
	})

	Describe("InitializeMainFrame", func() {
		It("fails without a controller", func() {
			opened := false
			err := v.InitializeMainFrame(func(controller.Communicator) (view.Frame, error) {
				opened = true
				return view.NewMainFrame(scene.LightStyle), nil
			})
			Expect(err).To(MatchError(view.ErrNoController))
			Expect(opened).To(BeFalse())
			Expect(v.Frame()).To(BeNil())
		})

		It("wraps opener failures", func() {
			v.SetController(controller.New(photon.Inputs{Wavelength: 500}, quiet))
			err := v.InitializeMainFrame(func(controller.Communicator) (view.Frame, error) {
				return nil, errors.New("no display")
			})
			Expect(err).To(MatchError(ContainSubstring("no display")))
		})

		It("passes the controller to the opener", func() {
			ctrl := controller.New(photon.Inputs{Wavelength: 500}, quiet)
			v.SetController(ctrl)
			var got controller.Communicator
			Expect(v.InitializeMainFrame(func(c controller.Communicator) (view.Frame, error) {
				got = c
				return view.NewMainFrame(scene.LightStyle), nil
			})).To(Succeed())
			Expect(got).To(BeIdenticalTo(ctrl))
			Expect(v.Controller()).To(BeIdenticalTo(ctrl))
		})
	})

	Describe("forwarding before the frame exists", func() {
		It("drops updates instead of panicking", func() {
			Expect(func() {
				v.SetExitEnergy(1)
				v.SetPhotonEnergy(1)
				v.SetOutcomeCurrent(photon.NewExpNumber(1e-7))
				v.SetLightIntensity(10)
				v.SetWavelength(400)
				v.SetVoltage(1)
			}).NotTo(Panic())
			Expect(v.SetElementType("sodium")).To(MatchError(view.ErrNoFrame))
		})
	})

	Context("with an open frame", func() {
		var frame view.Frame

		BeforeEach(func() {
			v.SetController(controller.New(photon.Inputs{Wavelength: 500}, quiet))
			Expect(v.InitializeMainFrame(view.OpenMainFrame(scene.LightStyle))).To(Succeed())
			frame = v.Frame()
			frame.CathodePanel().Render(nopSurface{})
		})

		It("forwards exit energy to both panels", func() {
			v.SetExitEnergy(2.28)
			Expect(readout(frame.OutcomePanel().Readouts(), "work function")).To(Equal("2.280 eV"))
			Expect(frame.CathodePanel().Readouts().ExitEnergy).To(Equal(2.28))
			Expect(frame.CathodePanel().Dirty()).To(BeTrue())
		})

		It("forwards photon energy to both panels", func() {
			v.SetPhotonEnergy(3.1)
			Expect(readout(frame.OutcomePanel().Readouts(), "photon energy")).To(Equal("3.100 eV"))
			Expect(frame.CathodePanel().Readouts().PhotonEnergy).To(Equal(3.1))
		})

		It("forwards the current to both panels", func() {
			v.SetOutcomeCurrent(photon.NewExpNumber(2.5e-7))
			Expect(readout(frame.OutcomePanel().Readouts(), "current")).To(Equal("2.50e-07 A"))
			Expect(frame.CathodePanel().Readouts().Current.Exponent).To(Equal(-7))
		})

		It("updates the drawing inputs", func() {
			v.SetLightIntensity(70)
			v.SetWavelength(620)
			v.SetVoltage(-1.5)
			Expect(frame.CathodePanel().Frame()).To(Equal(scene.Frame{Wavelength: 620, Intensity: 70, Voltage: -1.5}))
		})

		It("shows the selected metal", func() {
			Expect(v.SetElementType("Cs")).To(Succeed())
			info, ok := frame.InfoPanel().Element()
			Expect(ok).To(BeTrue())
			Expect(info.Metal).To(Equal(photon.Cesium))
			Expect(readout(frame.InfoPanel().Readouts(), "metal")).To(Equal("cesium (Cs)"))
		})

		It("rejects unknown metals", func() {
			Expect(v.SetElementType("adamantium")).To(MatchError(photon.ErrUnknownMetal))
		})
	})
})

var _ = Describe("Connect", func() {
	It("wires controller, view and frame together", func() {
		ctrl := controller.New(photon.Inputs{Metal: photon.Potassium, Wavelength: 450, Intensity: 100, Voltage: 1}, quiet)
		v, err := view.Connect(ctrl, view.OpenMainFrame(scene.DarkStyle), quiet)
		Expect(err).NotTo(HaveOccurred())

		panel := v.Frame().CathodePanel()
		Expect(panel.Frame()).To(Equal(scene.Frame{Wavelength: 450, Intensity: 100, Voltage: 1}))
		Expect(readout(v.Frame().InfoPanel().Readouts(), "metal")).To(Equal("potassium (K)"))
		Expect(readout(v.Frame().OutcomePanel().Readouts(), "current")).To(Equal("1.00e-06 A"))

		ctrl.ChangeWavelength(800)
		Expect(panel.Frame().Wavelength).To(Equal(800.0))
		Expect(readout(v.Frame().OutcomePanel().Readouts(), "current")).To(Equal("0 A"))
	})

	It("refuses a nil controller", func() {
		v := view.New(quiet)
		Expect(v.InitializeMainFrame(view.OpenMainFrame(scene.LightStyle))).To(MatchError(view.ErrNoController))
	})
})
