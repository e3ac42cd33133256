package payroll

import "ems/internal/domain/core"

// taxRate is the flat demo deduction. There is no tax-rule engine; every
// payslip applies the same 10%.
const taxRate = 0.10

// Calculate derives the monthly breakdown from an employee's salary
// components: gross is the sum of basic, HRA and allowances, and net is
// gross less the flat tax.
func Calculate(salary core.Salary) Breakdown {
	gross := salary.Basic + salary.HRA + salary.Allowances
	tax := gross * taxRate
	return Breakdown{
		Basic:      salary.Basic,
		HRA:        salary.HRA,
		Allowances: salary.Allowances,
		Gross:      gross,
		Tax:        tax,
		Net:        gross - tax,
	}
}
