package superzk

// DecodeOuts opens every output tk can recognize and attaches the
// nullifiers or traces the ledger uses to detect its spend. Outputs that
// are not addressed to tk are skipped.
func DecodeOuts(tk *TK, outs []*Out) []*UTXO {
	legacy, current := tk.WithScheme(Czero), tk.WithScheme(SuperZK)
	var utxos []*UTXO
	for i, out := range outs {
		var utxo *UTXO
		var err error
		switch {
		case out.O != nil:
			utxo, err = decodeOutO(legacy, out)
		case out.Z != nil:
			utxo, err = decodeOutZ(legacy, out)
		case out.P != nil:
			utxo, err = decodeOutP(current, out)
		case out.C != nil:
			utxo, err = decodeOutC(current, out)
		default:
			logger.Warnw("empty output", "index", i)
			continue
		}
		if err != nil {
			logger.Debugw("output skipped", "index", i, "error", err)
			continue
		}
		utxos = append(utxos, utxo)
	}
	return utxos
}

func decodeOutO(tk *TK, out *Out) (*UTXO, error) {
	if !tk.IsMyPKr(out.O.Addr) {
		return nil, ErrNotMine
	}
	trace, err := CzeroTrace(tk, out.RootCM)
	if err != nil {
		return nil, err
	}
	return &UTXO{
		Root:  out.Root,
		PKr:   out.O.Addr,
		Asset: out.O.Asset,
		Memo:  out.O.Memo,
		Nils:  [][]byte{out.Root, pointBytes(trace)},
	}, nil
}

func decodeOutZ(tk *TK, out *Out) (*UTXO, error) {
	key, err := CzeroFetchKey(tk, out.Z.RPK)
	if err != nil {
		return nil, err
	}
	info, err := CzeroConfirmOut(key, out.Z.EInfo, out.Z.PKr, out.Z.OutCM)
	if err != nil {
		return nil, err
	}
	trace, err := CzeroTrace(tk, out.RootCM)
	if err != nil {
		return nil, err
	}
	return &UTXO{
		Root:  out.Root,
		PKr:   out.Z.PKr,
		Asset: info.Asset,
		Memo:  info.Memo,
		Nils:  [][]byte{pointBytes(trace)},
		IsZ:   true,
	}, nil
}

func decodeOutP(tk *TK, out *Out) (*UTXO, error) {
	if !tk.IsMyPKr(out.P.PKr) {
		return nil, ErrNotMine
	}
	nul, err := Nil(tk, out.RootCM, out.P.PKr)
	if err != nil {
		return nil, err
	}
	return &UTXO{
		Root:  out.Root,
		PKr:   out.P.PKr,
		Asset: out.P.Asset,
		Memo:  out.P.Memo,
		Nils:  [][]byte{nul[:]},
	}, nil
}

func decodeOutC(tk *TK, out *Out) (*UTXO, error) {
	key, err := FetchRPKKey(out.C.PKr, tk, out.C.RPK)
	if err != nil {
		return nil, err
	}
	info, err := ConfirmOutC(key, out.C.EInfo, out.C.AssetCM)
	if err != nil {
		return nil, err
	}
	nul, err := Nil(tk, out.RootCM, out.C.PKr)
	if err != nil {
		return nil, err
	}
	return &UTXO{
		Root:  out.Root,
		PKr:   out.C.PKr,
		Asset: info.Asset,
		Memo:  info.Memo,
		Nils:  [][]byte{nul[:]},
		IsZ:   true,
	}, nil
}
