package receipt

func stylesheet(styled bool) string {
	if styled {
		return fullStyles
	}
	return plainStyles
}

const fullStyles = `
.vinti4-receipt { font-family: Arial, sans-serif; max-width: 400px; margin: 20px auto; border: 2px solid #333; border-radius: 8px; padding: 20px; background: white; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
.receipt-header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 15px; margin-bottom: 20px; }
.receipt-header h2 { margin: 0 0 10px 0; color: #333; font-size: 18px; font-weight: bold; }
.merchant { font-weight: bold; color: #666; }
.receipt-body { margin-bottom: 20px; }
.row { display: flex; justify-content: space-between; margin-bottom: 8px; padding: 4px 0; }
.label { font-weight: bold; color: #666; }
.value { color: #333; }
.amount-section { text-align: center; margin: 25px 0; padding: 15px; background: #f8f9fa; border-radius: 6px; border-left: 4px solid #007bff; }
.amount-section.refund { border-left-color: #dc3545; }
.amount { font-size: 24px; font-weight: bold; color: #333; margin-bottom: 5px; }
.description { color: #666; font-style: italic; }
.dcc-info { background: #fff3cd; border: 1px solid #ffeaa7; border-radius: 4px; padding: 12px; margin: 15px 0; }
.dcc-notice { font-weight: bold; color: #856404; margin-bottom: 8px; }
.receipt-footer { border-top: 1px solid #ddd; padding-top: 15px; text-align: center; }
.status { font-weight: bold; padding: 8px 12px; border-radius: 4px; margin-bottom: 10px; display: inline-block; }
.status.success { background: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
.status.cancelled { background: #fff3cd; color: #856404; border: 1px solid #ffeaa7; }
.status.error { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
.timestamp, .contact, .note { color: #666; font-size: 12px; margin-top: 5px; }
`

const plainStyles = `
.vinti4-receipt { font-family: courier, monospace; }
.amount { font-weight: bolder; padding: 0.5em; }
.receipt-footer { border-top: 1px solid #ddd; padding-top: 15px; text-align: center; }
.label { font-weight: bold; color: #666; }
.value { color: #333; }
`

const unavailableStyles = `
.vinti4-receipt.unavailable { font-family: Arial, sans-serif; max-width: 400px; margin: 20px auto; border: 2px solid #f5c6cb; border-radius: 8px; padding: 20px; background: #f8d7da; color: #721c24; }
.receipt-header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 15px; margin-bottom: 20px; }
.receipt-header h2 { margin: 0 0 10px 0; color: #333; font-size: 18px; font-weight: bold; }
.receipt-footer { border-top: 1px solid #ddd; padding-top: 15px; text-align: center; }
.status.error { font-weight: bold; padding: 8px 12px; border-radius: 4px; background: #f5c6cb; color: #721c24; display: inline-block; }
`
