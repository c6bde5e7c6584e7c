package composite

import "github.com/shopspring/decimal"

// Sample workstation parts. Each call returns a fresh node.

func Computer() *Composite { return New("Lucia's PC") }
func Cabinet() *Composite  { return New("GAMING CPU") }
func Others() *Composite   { return New("Display and other input devices") }

func Processor() *Equipment {
	return NewEquipment("Lucia's Fav processor", decimal.NewFromInt(1000))
}

func Ram() *Equipment {
	return NewEquipment("Lucia's Fav Ram", decimal.NewFromInt(200))
}

func GraphicsCard() *Equipment {
	return NewEquipment("Lucia's Fav GPU", decimal.NewFromInt(2000))
}

func OtherCpuComponents() *Equipment {
	return NewEquipment("Lucia's selected set of components for CPU", decimal.NewFromInt(1000))
}

func Monitor() *Equipment {
	return NewEquipment("Lucia's Fav monitor with 144hz refresh rate", decimal.NewFromInt(700))
}

func Keyboard() *Equipment {
	return NewEquipment("Lucia's Fav keyboard", decimal.NewFromInt(200))
}

func Mouse() *Equipment {
	return NewEquipment("Lucia's Fav mouse", decimal.NewFromInt(200))
}

func PopToy() *Equipment {
	return NewEquipment("Lucia's Fav pop toy to keep near her PC", decimal.NewFromInt(10))
}

// Workstation assembles the full sample tree: a cabinet with four parts and
// a peripherals group with four more, 5310 in total.
func Workstation() *Composite {
	cabinet := Cabinet().
		AddEquipment(Processor()).
		AddEquipment(Ram()).
		AddEquipment(GraphicsCard()).
		AddEquipment(OtherCpuComponents())

	others := Others().
		AddEquipment(Monitor()).
		AddEquipment(Keyboard()).
		AddEquipment(Mouse()).
		AddEquipment(PopToy())

	return Computer().AddComposite(cabinet).AddComposite(others)
}
