package hart

// Reg is an integer register index, named per the RISC-V ABI.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	RegZero = Reg(0)  // zero
	RegRa   = Reg(1)  // ra
	RegSp   = Reg(2)  // sp
	RegGp   = Reg(3)  // gp
	RegTp   = Reg(4)  // tp
	RegT0   = Reg(5)  // t0
	RegT1   = Reg(6)  // t1
	RegT2   = Reg(7)  // t2
	RegS0   = Reg(8)  // s0
	RegS1   = Reg(9)  // s1
	RegA0   = Reg(10) // a0
	RegA1   = Reg(11) // a1
	RegA2   = Reg(12) // a2
	RegA3   = Reg(13) // a3
	RegA4   = Reg(14) // a4
	RegA5   = Reg(15) // a5
	RegA6   = Reg(16) // a6
	RegA7   = Reg(17) // a7
	RegS2   = Reg(18) // s2
	RegS3   = Reg(19) // s3
	RegS4   = Reg(20) // s4
	RegS5   = Reg(21) // s5
	RegS6   = Reg(22) // s6
	RegS7   = Reg(23) // s7
	RegS8   = Reg(24) // s8
	RegS9   = Reg(25) // s9
	RegS10  = Reg(26) // s10
	RegS11  = Reg(27) // s11
	RegT3   = Reg(28) // t3
	RegT4   = Reg(29) // t4
	RegT5   = Reg(30) // t5
	RegT6   = Reg(31) // t6
)

// RegFp is the frame pointer alias for s0.
const RegFp = RegS0
