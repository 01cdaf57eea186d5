package timer

// Prescaler divides the 16 MHz base clock by 2^n before it drives the
// counter. It only applies to TimerMode.
type Prescaler interface {
	exponent() uint8
}

// Prescaler exponents accepted by the PRESCALER register
type (
	P0 struct{} // 16 MHz
	P1 struct{} // 8 MHz
	P2 struct{} // 4 MHz
	P3 struct{} // 2 MHz
	P4 struct{} // 1 MHz
	P5 struct{} // 500 kHz
	P6 struct{} // 250 kHz
	P7 struct{} // 125 kHz
	P8 struct{} // 62.5 kHz
	P9 struct{} // 31.25 kHz
)

func (P0) exponent() uint8 { return 0 }
func (P1) exponent() uint8 { return 1 }
func (P2) exponent() uint8 { return 2 }
func (P3) exponent() uint8 { return 3 }
func (P4) exponent() uint8 { return 4 }
func (P5) exponent() uint8 { return 5 }
func (P6) exponent() uint8 { return 6 }
func (P7) exponent() uint8 { return 7 }
func (P8) exponent() uint8 { return 8 }
func (P9) exponent() uint8 { return 9 }
