package corpus

// Built-in approved-claim corpus. Claim strings are reproduced verbatim
// from the approved-claims library, including their trailing
// substantiation text; downstream code truncates at the substantiation
// delimiter when only the core marketing sentence is wanted.
var defaultProducts = []Product{
	{
		Name:        "Clareon PanOptix IOL",
		Description: "Clareon PanOptix IOL is a trifocal intraocular lens designed to provide clear vision at near, intermediate, and far distances for patients undergoing cataract surgery.",
		ApprovedClaims: []string{
			"20/20 Near, Intermediate, and Distance Vision is now possible † Based on mean value of binocular defocus curve at near, intermediate, and distance at 6 months (n=127). ‡ Snellen VA was converted from logMAR VA. A Snellen notation of 20/20-2 or better indicates a logMAR VA of 0.04 or better, which means 3 or more of the 5 Early Treatment Diabetic Retinopathy Study chart letters in the line were identified correctly.",
			"The latest advancements in lens technology enable the Clareon® PanOptix® IOL to deliver a full range of vision and exceptional clarity.",
			"ENLIGHTEN® Optical Technology—a proprietary design that optimizes intermediate vision without compromising exceptional near and distance vision.",
			"Optimized light energy distribution — 88% total light utilization at a 3 mm pupil size (Light allocation: 50% distance, 25% intermediate, 25% near).",
			"Reduces dependence on pupil size with a 4.5 mm diffractive zone.",
			"Patients love their results with the Clareon® PanOptix® IOL.",
			"Enjoy a Full Range of Vision and Exceptional Clarity Without Glasses. * Based on in vitro examinations of glistenings, surface haze and SSNGs.",
			"The Clareon® PanOptix® lens mitigates the effects of presbyopia by providing improved intermediate and near visual acuity, while maintaining comparable distance visual acuity with a reduced need for eyeglasses, compared to a monofocal IOL.",
			"More comfortable intermediate vision at 60 cm.",
			"A continuous range of vision from distance to near up to 33 cm. *Based on data for AcrySof IQ PanOptix Trifocal IOL.",
		},
	},
	{
		Name:        "Total 30 Contact Lens",
		Description: "Total 30 Contact Lens is a monthly disposable contact lens with water gradient technology for extended comfort and clear vision.",
		ApprovedClaims: []string{
			"TOTAL30® contact lenses that feel like nothing, even at day 30. In a clinical study wherein patients (n=66) used CLEAR CARE solution for nightly cleaning, disinfecting, and storing; Alcon data on file, 2021.",
			"The first and only monthly replacement Water Gradient contact lenses. Surface property analysis of lehfilcon A lenses out of pack and after 30 days of wear; Alcon data on file, 2021.",
			"TOTAL30® contact lenses feature a gradual transition in water content, from 55% at the core to nearly 100% water at the outermost surface. 1. In vitro analysis of lens oxygen permeability, water content, and surface imaging; Alcon data on file, 2021. 2. In vitro analysis of lehfilcon A contact lenses outermost surface softness and correlation with water content; Alcon data on file, 2021.",
			"Water Gradient Technology in TOTAL30 contact lenses lasts for a full 30 days. 1. Surface property analysis of lehfilcon A lenses out of pack and after 30 days of wear; Alcon data on file, 2021. 2. Surface observations of lehfilcon A contact lens and human cornea using scanning transmissions electron microscopy; Alcon data on file, 2021.",
			"CELLIGENT® Technology creates a dynamic lens surface that biomimics the corneal surface. 1. Shi X, Cantu-Crouch D, Sharma V, et al. Surface characterization of a silicone hydrogel contact lens having bioinspired 2-methacryloyloxyethyl phosphorylcholine polymer layer in hydrated state. Colloids Surf B: Biointerfaces. March 2021;199:111539. 2. Surface observations of lehfilcon A contact lens and human cornea using scanning transmissions electron microscopy; Alcon data on file, 2021.",
			"Helps resist the adherence of bacteria and lipids for a clean lens. In vitro evaluation of bacterial biofilm in commercial lenses; Alcon data on file, 2020.",
			"Water Gradient delivers superior softness and superior lubricity vs. leading reusable lenses. 1. Laboratory analysis of surface modulus of lehfilcon A and commercial lenses using atomic force microscope; Alcon data on file, 2021. 2. Surface lubricity testing of lehfilcon A and commercial lenses using nano-tribometer; Alcon data on file, 2021.",
			"Class 1 UV Blocking delivers the highest level of UV protection available in a monthly replacement lens. Laboratory assessment of ultraviolet and visible light transmission properties of lehfilcon A contact lenses using spectrophotometer; Alcon data on file, 2020.",
			"The first and only monthly replacement Water Gradient toric contact lenses. 1. Shi X, Cantu-Crouch D, Sharma V, et al. Surface characterization of a silicone hydrogel contact lens having bioinspired 2-methacryloyloxyethyl phosphorylcholine polymer layer in hydrated state. Colloids Surf B: Biointerfaces. March 2021;199:111539. 2. Surface property analysis of lehfilcon A lenses out of pack and after 30 days of wear; Alcon data on file, 2021. 3. Surface observations of lehfilcon A contact lens and human cornea using scanning transmissions electron microscopy; Alcon data on file, 2021.",
			"TOTAL30 delivers the only Water Gradient, reusable lens that is clinically shown to feel like nothing, even on day 30. In a clinical study wherein patients (n=66) used CLEAR CARE solution for nightly cleaning, disinfecting, and storing; Alcon data on file, 2021.",
		},
	},
}

// Alias order matters: earlier entries win when a material mentions
// several informal names.
var defaultAliases = []Alias{
	{Term: "total30", Product: "Total 30 Contact Lens"},
	{Term: "total 30", Product: "Total 30 Contact Lens"},
	{Term: "clareon", Product: "Clareon PanOptix IOL"},
	{Term: "panoptix", Product: "Clareon PanOptix IOL"},
	{Term: "iol", Product: "Clareon PanOptix IOL"},
	{Term: "intraocular", Product: "Clareon PanOptix IOL"},
}
