/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package utils

import (
	"fmt"
	"strings"
)

// MergeErrorList joins the non-nil errors of errorList into one error.
// It returns nil when there is nothing to report.
func MergeErrorList(errorList []error) error {
	nonNil := []error{}
	for _, err := range errorList {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}

	if len(nonNil) == 0 {
		return nil
	}

	if len(nonNil) == 1 {
		return nonNil[0]
	}

	errorMessages := []string{}
	for _, err := range nonNil {
		errorMessages = append(errorMessages, fmt.Sprintf("(%v)", err))
	}

	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}
