package main

import "sevagram/models"

type seedService struct {
	name, description, icon, duration string
	category                          models.ServiceCategory
	price                             float64
}

var seedServices = []seedService{
	{"Pipe Leak Repair", "Fix leaking pipes and faucets in your home. Fast and reliable service.", "🔧", "1-2 hours", models.CategoryPlumbing, 150},
	{"Drain Cleaning", "Clear clogged drains and sewage lines efficiently.", "🚰", "1-2 hours", models.CategoryPlumbing, 200},
	{"Water Tank Installation", "Install new water tanks with proper connections.", "🛁", "3-4 hours", models.CategoryPlumbing, 500},

	{"House Wiring", "Complete electrical wiring for homes and buildings.", "⚡", "4-6 hours", models.CategoryElectrical, 300},
	{"Fan Installation", "Install ceiling fans and exhaust fans professionally.", "🌀", "1 hour", models.CategoryElectrical, 100},
	{"Circuit Board Repair", "Fix electrical circuit boards and fuse boxes.", "🔌", "2-3 hours", models.CategoryElectrical, 250},

	{"Furniture Repair", "Repair and restore wooden furniture.", "🪚", "2-3 hours", models.CategoryCarpentry, 200},
	{"Door Installation", "Install new doors and fix door frames.", "🚪", "3-4 hours", models.CategoryCarpentry, 400},
	{"Custom Cabinet Making", "Design and build custom wooden cabinets.", "🗄️", "1-2 days", models.CategoryCarpentry, 800},

	{"Tractor Repair", "Repair and maintain agricultural tractors.", "🚜", "3-5 hours", models.CategoryAgriculture, 500},
	{"Water Pump Service", "Service and repair agricultural water pumps.", "💧", "2-3 hours", models.CategoryAgriculture, 300},
	{"Harvester Maintenance", "Complete maintenance of harvesting equipment.", "🌾", "4-6 hours", models.CategoryAgriculture, 600},

	{"Washing Machine Repair", "Fix all types of washing machine issues.", "🧺", "1-2 hours", models.CategoryApplianceRepair, 250},
	{"Refrigerator Repair", "Repair refrigerators and cooling issues.", "🧊", "2-3 hours", models.CategoryApplianceRepair, 300},
	{"TV Repair", "Fix LED, LCD, and smart TV problems.", "📺", "1-2 hours", models.CategoryApplianceRepair, 200},

	{"Termite Control", "Complete termite treatment for homes.", "🐜", "3-4 hours", models.CategoryPestControl, 400},
	{"Rodent Control", "Get rid of rats and mice from your property.", "🐭", "2-3 hours", models.CategoryPestControl, 300},
	{"Mosquito Fogging", "Mosquito control and fogging service.", "🦟", "1-2 hours", models.CategoryPestControl, 200},

	{"House Deep Cleaning", "Complete deep cleaning of your entire house.", "🧹", "4-6 hours", models.CategoryCleaning, 500},
	{"Kitchen Cleaning", "Thorough cleaning of kitchen and appliances.", "🧽", "2-3 hours", models.CategoryCleaning, 250},
	{"Bathroom Cleaning", "Deep cleaning and sanitization of bathrooms.", "🚿", "1-2 hours", models.CategoryCleaning, 150},

	{"Interior Painting", "Professional interior wall painting services.", "🎨", "2-3 days", models.CategoryPainting, 800},
	{"Exterior Painting", "Exterior wall painting with weather-resistant paint.", "🖌️", "3-4 days", models.CategoryPainting, 1200},
	{"Furniture Painting", "Paint and refinish wooden furniture.", "🪑", "1-2 days", models.CategoryPainting, 300},

	{"Submersible Pump Repair", "Repair and maintain submersible water pumps.", "💧", "2-3 hours", models.CategoryWaterPump, 400},
	{"Bore Well Pump Installation", "Install new bore well pumps.", "🚰", "4-5 hours", models.CategoryWaterPump, 600},
	{"Motor Pump Service", "Service and repair water motor pumps.", "⚙️", "1-2 hours", models.CategoryWaterPump, 250},

	{"Solar Panel Installation", "Install solar panels for homes and farms.", "☀️", "1-2 days", models.CategorySolarMaintenance, 5000},
	{"Solar Panel Cleaning", "Clean and maintain solar panels for efficiency.", "🧼", "2-3 hours", models.CategorySolarMaintenance, 300},
	{"Solar Inverter Repair", "Repair and service solar inverters.", "🔋", "2-3 hours", models.CategorySolarMaintenance, 400},
}
